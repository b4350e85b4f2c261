// Package release parses JVM installation metadata: the key=value release
// descriptor shipped with most distributions, and the macOS application
// bundle property list that carries the display name.
package release

import (
	"fmt"
	"os"
	"strings"

	"github.com/magiconair/properties"
	"howett.net/plist"

	"jvmfind/internal/platform"
)

// Info is the normalized field set extracted from a release descriptor.
// Fields missing from the descriptor are empty strings; downstream
// comparisons treat an empty version as lowest-ranked rather than an
// error.
type Info struct {
	Version      string
	Architecture string
	Implementor  string
}

// Parse reads the recognized keys out of release descriptor content.
func Parse(data []byte) (Info, error) {
	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return Info{}, fmt.Errorf("invalid release descriptor: %w", err)
	}
	return Info{
		Version:      unquote(props.GetString("JAVA_VERSION", "")),
		Architecture: platform.CanonicalArch(unquote(props.GetString("OS_ARCH", ""))),
		Implementor:  unquote(props.GetString("IMPLEMENTOR", "")),
	}, nil
}

// ParseFile parses the release descriptor at path.
func ParseFile(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}
	return Parse(data)
}

// DisplayName derives a human-readable name for an installation: the
// implementor and version when the descriptor names one, otherwise the
// given fallback (typically the directory name).
func (i Info) DisplayName(fallback string) string {
	if i.Implementor != "" && i.Version != "" {
		return i.Implementor + " - " + i.Version
	}
	return fallback
}

// BundleName reads the CFBundleName field from a macOS Info.plist. An
// unreadable or malformed plist is an error so callers can skip the
// bundle; a plist without the field yields an empty name.
func BundleName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var bundle struct {
		CFBundleName string `plist:"CFBundleName"`
	}
	if err := plist.NewDecoder(f).Decode(&bundle); err != nil {
		return "", fmt.Errorf("invalid bundle descriptor: %w", err)
	}
	return unquote(bundle.CFBundleName), nil
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
