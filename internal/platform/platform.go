// Package platform identifies the host operating system and CPU
// architecture. Detection runs once at startup; the result is read-only.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable marks environments the tool cannot run on: unrecognized
// OS family, unknown CPU architecture, or a Linux distribution with no
// known JVM directory and no configured search paths.
var ErrUnavailable = errors.New("unsupported host environment")

// Family is the coarse OS kind that selects the installation locator
// strategy.
type Family string

const (
	Darwin  Family = "Darwin"
	Linux   Family = "Linux"
	Windows Family = "Windows"
)

// OperatingSystem describes the host. Architecture uses the same
// normalized vocabulary as Jvm records so it can serve as a sort
// tie-breaker.
type OperatingSystem struct {
	Family       Family
	Name         string
	Architecture string
}

// archAliases canonicalizes vendor architecture tokens. arm64 and aarch64
// are deliberately kept distinct: they can denote different ABI build
// targets depending on the platform.
var archAliases = map[string]string{
	"amd64": "x86_64",
	"x64":   "x86_64",
	"i386":  "x86",
	"i486":  "x86",
	"i586":  "x86",
	"i686":  "x86",
}

// nativeArches is the closed vocabulary accepted for the host itself.
var nativeArches = map[string]bool{
	"x86_64":  true,
	"x86":     true,
	"aarch64": true,
	"arm64":   true,
}

// CanonicalArch maps a vendor architecture token to the normalized
// vocabulary. Unknown tokens pass through unchanged so a release
// descriptor with an exotic architecture still yields a usable record.
func CanonicalArch(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := archAliases[token]; ok {
		return canonical
	}
	return token
}

// NormalizeHostArch canonicalizes the architecture reported for the host
// and rejects anything outside the known vocabulary. A wrong default would
// silently mis-rank results, so this fails hard instead of guessing.
func NormalizeHostArch(token string) (string, error) {
	arch := CanonicalArch(token)
	if !nativeArches[arch] {
		return "", fmt.Errorf("%w: unknown architecture %q", ErrUnavailable, token)
	}
	return arch, nil
}

// osReleaseID extracts the ID field from os-release file content.
func osReleaseID(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		return strings.Trim(strings.TrimPrefix(line, "ID="), `"'`)
	}
	return ""
}
