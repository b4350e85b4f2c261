//go:build !windows

package locator

import "jvmfind/internal/jvm"

// The registry traversal only exists on Windows; elsewhere the Windows
// strategy degrades to scanning the configured search paths.
func locateWindows(extraPaths []string) ([]jvm.Jvm, error) {
	return scanInstallRoots(extraPaths), nil
}
