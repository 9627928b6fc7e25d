package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInitConfig_Success(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := InitConfig(false)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	for _, section := range []string{"logging:", "output: table", "network:", "watch:"} {
		if !strings.Contains(string(content), section) {
			t.Errorf("Config file missing %q", section)
		}
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		t.Fatalf("Generated config is not valid YAML: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Generated config is not loadable: %v", err)
	}
}

func TestInitConfigToPath_AlreadyExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := InitConfigToPath(path, false)
	if err == nil {
		t.Fatal("Expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := InitConfigToPath(path, true); err != nil {
		t.Fatalf("Force overwrite failed: %v", err)
	}
	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "output: table") {
		t.Errorf("Expected default config after force, got:\n%s", content)
	}
}
