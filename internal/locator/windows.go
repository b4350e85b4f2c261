//go:build windows

package locator

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"

	"jvmfind/internal/jvm"
	"jvmfind/internal/release"
)

// locateWindows combines a plain scan of the configured search paths with
// a traversal of the per-vendor JDK registry hierarchy.
func locateWindows(extraPaths []string) ([]jvm.Jvm, error) {
	return append(scanInstallRoots(extraPaths), scanRegistry()...), nil
}

// scanRegistry walks HKLM\SOFTWARE looking for vendor keys that contain a
// JDK*-named subkey (e.g. Eclipse Adoptium\JDK, AdoptOpenJDK\JDK) and
// derives one installation per version subkey beneath it. Unreadable keys
// are skipped like any other malformed candidate.
func scanRegistry() []jvm.Jvm {
	software, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE`, registry.READ)
	if err != nil {
		return nil
	}
	defer software.Close()

	vendors, err := software.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var jvms []jvm.Jvm
	for _, vendor := range vendors {
		jvms = append(jvms, scanVendor(vendor)...)
	}
	return jvms
}

func scanVendor(vendor string) []jvm.Jvm {
	vendorKey, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\`+vendor, registry.READ)
	if err != nil {
		return nil
	}
	defer vendorKey.Close()

	products, err := vendorKey.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var jvms []jvm.Jvm
	for _, product := range products {
		if !strings.HasPrefix(product, "JDK") {
			continue
		}
		productPath := `SOFTWARE\` + vendor + `\` + product
		productKey, err := registry.OpenKey(registry.LOCAL_MACHINE, productPath, registry.READ)
		if err != nil {
			continue
		}
		versions, err := productKey.ReadSubKeyNames(-1)
		productKey.Close()
		if err != nil {
			continue
		}

		for _, version := range versions {
			home := resolveInstallPath(productPath + `\` + version)
			if home == "" {
				continue
			}
			jvms = append(jvms, registryJvm(vendor, version, home))
		}
	}
	return jvms
}

// resolveInstallPath reads the install directory for one version subkey.
// The legacy JavaHome value is read first; the newer per-runtime MSI Path
// values (hotspot, openj9) override it when present. Trailing path
// separators are stripped.
func resolveInstallPath(keyPath string) string {
	home := ""
	if key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE); err == nil {
		if value, _, err := key.GetStringValue("JavaHome"); err == nil {
			home = value
		}
		key.Close()
	}

	for _, runtime := range []string{"hotspot", "openj9"} {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath+`\`+runtime+`\MSI`, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		if value, _, err := key.GetStringValue("Path"); err == nil && value != "" {
			home = value
		}
		key.Close()
	}

	return strings.TrimRight(home, `\/`)
}

// registryJvm builds a record for a registry-discovered installation,
// preferring the release descriptor on disk over the registry key names.
func registryJvm(vendor, version, home string) jvm.Jvm {
	info, err := release.ParseFile(filepath.Join(home, "release"))
	if err != nil || info.Version == "" {
		return jvm.New(version, vendor+" "+version, "", home)
	}
	return jvm.New(info.Version, info.DisplayName(vendor+" "+version), info.Architecture, home)
}
