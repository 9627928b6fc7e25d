package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Soneso/stellar-php-sdk-sub004/internal/bytesize"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
output: yaml
network:
  name: testnet
watch:
  debounce: 250ms
input:
  max_size: 64KiB
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected level 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected default output 'stderr', got %q", cfg.Logging.Output)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Expected output 'yaml', got %q", cfg.Output)
	}
	if cfg.Network.Passphrase != types.TestNetworkPassphrase {
		t.Errorf("Expected testnet passphrase, got %q", cfg.Network.Passphrase)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("Expected debounce 250ms, got %v", cfg.Watch.Debounce)
	}
	if cfg.Input.MaxSize != 64*bytesize.KiB {
		t.Errorf("Expected max size 64KiB, got %v", cfg.Input.MaxSize)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults without a config file, got: %v", err)
	}
	if cfg.Output != "table" {
		t.Errorf("Expected default output 'table', got %q", cfg.Output)
	}
	if cfg.Network.Passphrase != types.PublicNetworkPassphrase {
		t.Errorf("Expected public passphrase, got %q", cfg.Network.Passphrase)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got: %v", err)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected level 'INFO', got %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "logging: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "output: xml\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error for output 'xml'")
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDRCTL_LOGGING_LEVEL", "ERROR")
	t.Setenv("XDRCTL_NETWORK_NAME", "futurenet")
	t.Setenv("XDRCTL_OUTPUT", "json")
	t.Setenv("XDRCTL_INPUT_MAX_SIZE", "2MiB")

	path := writeConfig(t, "logging:\n  level: INFO\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.Output != "json" {
		t.Errorf("Expected output 'json' from env var, got %q", cfg.Output)
	}
	if cfg.Network.Passphrase != types.FutureNetworkPassphrase {
		t.Errorf("Expected futurenet passphrase, got %q", cfg.Network.Passphrase)
	}
	if cfg.Input.MaxSize != 2*bytesize.MiB {
		t.Errorf("Expected max size 2MiB from env var, got %v", cfg.Input.MaxSize)
	}

	// Env applies without a file too.
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' without file, got %q", cfg.Logging.Level)
	}
}

func TestLoad_CustomPassphrase(t *testing.T) {
	path := writeConfig(t, "network:\n  passphrase: Standalone Network ; February 2017\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Network.Name != "" {
		t.Errorf("Expected no network name, got %q", cfg.Network.Name)
	}
	if cfg.Network.Passphrase != "Standalone Network ; February 2017" {
		t.Errorf("Unexpected passphrase %q", cfg.Network.Passphrase)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := GetDefaultConfig()
	cfg.Output = "json"
	cfg.Watch.Debounce = time.Second
	cfg.Input.MaxSize = 3 * bytesize.MiB

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to reload saved config: %v", err)
	}
	if loaded.Output != "json" {
		t.Errorf("Expected output 'json', got %q", loaded.Output)
	}
	if loaded.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", loaded.Watch.Debounce)
	}
	if loaded.Input.MaxSize != 3*bytesize.MiB {
		t.Errorf("Expected max size 3MiB, got %v", loaded.Input.MaxSize)
	}
	if loaded.Network != cfg.Network {
		t.Errorf("Network changed across save: %+v vs %+v", loaded.Network, cfg.Network)
	}
}

func TestGetConfigDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	if dir := GetConfigDir(); dir != filepath.Join(tmp, "xdrctl") {
		t.Errorf("Unexpected config dir %q", dir)
	}
	if path := GetDefaultConfigPath(); filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected config.yaml, got %q", path)
	}
	if DefaultConfigExists() {
		t.Error("Expected no default config in a fresh directory")
	}
}
