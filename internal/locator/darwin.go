package locator

import (
	"os"
	"path/filepath"

	"jvmfind/internal/jvm"
	"jvmfind/internal/release"
)

const darwinDefaultRoot = "/Library/Java/JavaVirtualMachines"

// scanBundleRoots scans macOS-style JVM bundle directories. A valid bundle
// carries Contents/Info.plist for the display name and a release
// descriptor under Contents/Home; directories missing either file are
// silently skipped, since many bundle directories are not JVMs at all. The
// recorded path is the Contents/Home directory, the value an invoker would
// set as JAVA_HOME.
func scanBundleRoots(roots []string) []jvm.Jvm {
	var jvms []jvm.Jvm
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			bundle := filepath.Join(root, entry.Name())

			name, err := release.BundleName(filepath.Join(bundle, "Contents", "Info.plist"))
			if err != nil {
				continue
			}
			info, err := release.ParseFile(filepath.Join(bundle, "Contents", "Home", "release"))
			if err != nil {
				continue
			}

			jvms = append(jvms, jvm.New(
				info.Version,
				name,
				info.Architecture,
				filepath.Join(bundle, "Contents", "Home"),
			))
		}
	}
	return jvms
}
