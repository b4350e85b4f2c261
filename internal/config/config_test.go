package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsEmptyConfig(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if len(cfg.SearchPaths) != 0 {
		t.Errorf("SearchPaths = %v, want empty", cfg.SearchPaths)
	}
	if !cfg.Update.Enabled {
		t.Error("Update.Enabled should default to true")
	}
}

func TestLoad_SanitizesSearchPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"search_paths": ["/opt/java", "", "  ", "/opt/java", "/OPT/JAVA", "/var/jvm/"]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}

	want := []string{"/opt/java", "/var/jvm"}
	if len(cfg.SearchPaths) != len(want) {
		t.Fatalf("SearchPaths = %v, want %v", cfg.SearchPaths, want)
	}
	for i, p := range want {
		if cfg.SearchPaths[i] != p {
			t.Errorf("SearchPaths[%d] = %q, want %q", i, cfg.SearchPaths[i], p)
		}
	}
}

func TestLoad_StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"search_paths": ["/opt/java"]}`)...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if len(cfg.SearchPaths) != 1 || cfg.SearchPaths[0] != "/opt/java" {
		t.Errorf("SearchPaths = %v, want [/opt/java]", cfg.SearchPaths)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := loadFrom(path); err == nil {
		t.Error("loadFrom() with invalid JSON should return error")
	}
}

func TestSearchPathRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jvmfind", "config.json")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}

	cfg.AddSearchPath("/opt/java")
	cfg.AddSearchPath("/opt/java") // duplicate, ignored
	cfg.AddSearchPath("/var/jvm")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() after Save error: %v", err)
	}
	if len(loaded.SearchPaths) != 2 {
		t.Fatalf("SearchPaths = %v, want 2 entries", loaded.SearchPaths)
	}
	if !loaded.HasSearchPath("/opt/java") || !loaded.HasSearchPath("/var/jvm") {
		t.Errorf("SearchPaths = %v, missing expected entries", loaded.SearchPaths)
	}

	loaded.RemoveSearchPath("/opt/java")
	if loaded.HasSearchPath("/opt/java") {
		t.Error("RemoveSearchPath() did not remove the path")
	}
	if !loaded.HasSearchPath("/var/jvm") {
		t.Error("RemoveSearchPath() removed the wrong path")
	}
}

func TestAddSearchPath_RejectsEmpty(t *testing.T) {
	cfg := &Config{SearchPaths: []string{}}
	cfg.AddSearchPath("")
	cfg.AddSearchPath("   ")
	cfg.AddSearchPath(".")
	if len(cfg.SearchPaths) != 0 {
		t.Errorf("SearchPaths = %v, want empty", cfg.SearchPaths)
	}
}
