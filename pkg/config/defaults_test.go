package config

import (
	"testing"
	"time"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default log format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected default log output 'stderr', got %q", cfg.Logging.Output)
	}
	if cfg.Output != "table" {
		t.Errorf("Expected default output 'table', got %q", cfg.Output)
	}
	if cfg.Network.Name != NetworkPublic {
		t.Errorf("Expected default network 'public', got %q", cfg.Network.Name)
	}
	if cfg.Watch.Debounce != 100*time.Millisecond {
		t.Errorf("Expected default debounce 100ms, got %v", cfg.Watch.Debounce)
	}
	if cfg.Input.MaxSize != DefaultMaxInput {
		t.Errorf("Expected default max size %v, got %v", DefaultMaxInput, cfg.Input.MaxSize)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "warn", Format: "json", Output: "/tmp/xdrctl.log"},
		Output:  "yaml",
		Network: NetworkConfig{Name: "TESTNET"},
		Watch:   WatchConfig{Debounce: time.Second},
	}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected normalized level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "/tmp/xdrctl.log" {
		t.Errorf("Log output overwritten: %q", cfg.Logging.Output)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Output overwritten: %q", cfg.Output)
	}
	if cfg.Network.Name != NetworkTestnet || cfg.Network.Passphrase != types.TestNetworkPassphrase {
		t.Errorf("Unexpected network %+v", cfg.Network)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Debounce overwritten: %v", cfg.Watch.Debounce)
	}
}

func TestPassphraseFor(t *testing.T) {
	tests := map[string]string{
		"public":    types.PublicNetworkPassphrase,
		"Testnet":   types.TestNetworkPassphrase,
		"futurenet": types.FutureNetworkPassphrase,
	}
	for name, want := range tests {
		got, ok := PassphraseFor(name)
		if !ok || got != want {
			t.Errorf("PassphraseFor(%q) = %q, %v", name, got, ok)
		}
	}
	if _, ok := PassphraseFor("mainnet"); ok {
		t.Error("Expected unknown network to be rejected")
	}
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	if err := Validate(GetDefaultConfig()); err != nil {
		t.Errorf("Default config should be valid, got: %v", err)
	}
}
