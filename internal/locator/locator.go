// Package locator enumerates JVM installations on the host. Each OS
// family has its own strategy; all of them share the same failure policy:
// a single malformed or unreadable candidate is skipped, never aborting
// the scan.
package locator

import (
	"fmt"

	"jvmfind/internal/jvm"
	"jvmfind/internal/platform"
)

// Locate discovers every JVM installation reachable from the OS default
// roots and the caller-supplied extra search paths. Result ordering is not
// guaranteed; sorting belongs to the selector.
func Locate(host platform.OperatingSystem, extraPaths []string) ([]jvm.Jvm, error) {
	switch host.Family {
	case platform.Darwin:
		return scanBundleRoots(append(append([]string{}, extraPaths...), darwinDefaultRoot)), nil
	case platform.Linux:
		return locateLinux(host.Name, extraPaths)
	case platform.Windows:
		return locateWindows(extraPaths)
	}
	return nil, fmt.Errorf("%w: no locator for OS family %q", platform.ErrUnavailable, host.Family)
}

// linuxDefaultRoots maps a Linux distribution id to its conventional JVM
// install directory. Read-only after initialization.
var linuxDefaultRoots = map[string]string{
	"debian":              "/usr/lib/jvm",
	"ubuntu":              "/usr/lib/jvm",
	"linuxmint":           "/usr/lib/jvm",
	"pop":                 "/usr/lib/jvm",
	"fedora":              "/usr/lib/jvm",
	"rhel":                "/usr/lib/jvm",
	"centos":              "/usr/lib/jvm",
	"rocky":               "/usr/lib/jvm",
	"almalinux":           "/usr/lib/jvm",
	"amzn":                "/usr/lib/jvm",
	"arch":                "/usr/lib/jvm",
	"manjaro":             "/usr/lib/jvm",
	"alpine":              "/usr/lib/jvm",
	"opensuse-leap":       "/usr/lib64/jvm",
	"opensuse-tumbleweed": "/usr/lib64/jvm",
	"sles":                "/usr/lib64/jvm",
}

// DefaultRoot returns the built-in install directory scanned for the
// host, when the family has one (the Windows strategy is registry-driven).
func DefaultRoot(host platform.OperatingSystem) (string, bool) {
	switch host.Family {
	case platform.Darwin:
		return darwinDefaultRoot, true
	case platform.Linux:
		root, ok := linuxDefaultRoots[host.Name]
		return root, ok
	}
	return "", false
}

func locateLinux(distribution string, extraPaths []string) ([]jvm.Jvm, error) {
	roots := append([]string{}, extraPaths...)
	if root, ok := linuxDefaultRoots[distribution]; ok {
		roots = append(roots, root)
	} else if len(extraPaths) == 0 {
		return nil, fmt.Errorf("%w: no known JVM directory for Linux distribution %q and no search paths configured",
			platform.ErrUnavailable, distribution)
	}
	return scanInstallRoots(roots), nil
}
