package locator

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"jvmfind/internal/jvm"
	"jvmfind/internal/platform"
	"jvmfind/internal/release"
)

// scanInstallRoots walks the immediate subdirectories of each root and
// builds a Jvm record per valid installation. Symlinked entries are
// skipped to avoid double-counting aliased installations. A directory
// yields a record from its release descriptor when one is readable, else
// from its name when it follows the packaging convention; anything else is
// skipped.
func scanInstallRoots(roots []string) []jvm.Jvm {
	var jvms []jvm.Jvm
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.Type()&fs.ModeSymlink != 0 || !entry.IsDir() {
				continue
			}
			if found, ok := readInstallDir(root, entry.Name()); ok {
				jvms = append(jvms, found)
			}
		}
	}
	return jvms
}

func readInstallDir(root, name string) (jvm.Jvm, bool) {
	home := filepath.Join(root, name)

	info, err := release.ParseFile(filepath.Join(home, "release"))
	if err == nil && info.Version != "" {
		return jvm.New(info.Version, info.DisplayName(name), info.Architecture, home), true
	}

	version, arch, ok := parseInstallDirName(name)
	if !ok {
		return jvm.Jvm{}, false
	}
	return jvm.New(version, name, arch, home), true
}

// parseInstallDirName extracts version and architecture from directory
// names following the <prefix>-java-<version>-<vendor>-<arch> packaging
// convention. At least three hyphen-delimited segments with "java" as the
// second are required.
func parseInstallDirName(name string) (version, arch string, ok bool) {
	segments := strings.Split(name, "-")
	if len(segments) < 3 || segments[1] != "java" {
		return "", "", false
	}
	version = segments[2]
	if version == "" {
		return "", "", false
	}
	if len(segments) >= 5 {
		arch = platform.CanonicalArch(segments[4])
	}
	return version, arch, true
}
