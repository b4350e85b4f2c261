package release

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Info
	}{
		{
			name: "temurin style",
			data: "IMPLEMENTOR=\"Eclipse Adoptium\"\nJAVA_VERSION=\"17.0.2\"\nOS_ARCH=\"aarch64\"\nOS_NAME=\"Darwin\"\n",
			want: Info{Version: "17.0.2", Architecture: "aarch64", Implementor: "Eclipse Adoptium"},
		},
		{
			name: "legacy version with amd64",
			data: "JAVA_VERSION=\"1.8.0_292\"\nOS_ARCH=\"amd64\"\n",
			want: Info{Version: "1.8.0_292", Architecture: "x86_64"},
		},
		{
			name: "i586 canonicalized",
			data: "JAVA_VERSION=\"11.0.2\"\nOS_ARCH=\"i586\"\n",
			want: Info{Version: "11.0.2", Architecture: "x86"},
		},
		{
			name: "unquoted values",
			data: "JAVA_VERSION=17.0.2\nOS_ARCH=x86_64\n",
			want: Info{Version: "17.0.2", Architecture: "x86_64"},
		},
		{
			name: "missing fields default to empty",
			data: "OS_NAME=\"Linux\"\n",
			want: Info{},
		},
		{
			name: "empty descriptor",
			data: "",
			want: Info{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "release")); err == nil {
		t.Error("ParseFile() with missing file should return error")
	}
}

func TestDisplayName(t *testing.T) {
	info := Info{Version: "17.0.2", Implementor: "Eclipse Adoptium"}
	if got := info.DisplayName("temurin-17"); got != "Eclipse Adoptium - 17.0.2" {
		t.Errorf("DisplayName() = %q, want %q", got, "Eclipse Adoptium - 17.0.2")
	}

	bare := Info{Version: "17.0.2"}
	if got := bare.DisplayName("temurin-17"); got != "temurin-17" {
		t.Errorf("DisplayName() fallback = %q, want %q", got, "temurin-17")
	}
}

const testPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>net.temurin.17.jdk</string>
	<key>CFBundleName</key>
	<string>Eclipse Temurin 17</string>
</dict>
</plist>
`

func TestBundleName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Info.plist")
	if err := os.WriteFile(path, []byte(testPlist), 0644); err != nil {
		t.Fatalf("Failed to write plist: %v", err)
	}

	name, err := BundleName(path)
	if err != nil {
		t.Fatalf("BundleName() error: %v", err)
	}
	if name != "Eclipse Temurin 17" {
		t.Errorf("BundleName() = %q, want %q", name, "Eclipse Temurin 17")
	}
}

func TestBundleName_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := BundleName(filepath.Join(t.TempDir(), "Info.plist")); err == nil {
			t.Error("BundleName() with missing file should return error")
		}
	})

	t.Run("malformed plist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Info.plist")
		if err := os.WriteFile(path, []byte("not a plist"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := BundleName(path); err == nil {
			t.Error("BundleName() with malformed plist should return error")
		}
	})
}
