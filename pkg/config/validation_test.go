package config

import (
	"strings"
	"testing"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
)

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "INVALID"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log level")
	}
	if !strings.Contains(err.Error(), "oneof") {
		t.Errorf("Expected 'oneof' validation error, got: %v", err)
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for invalid log format")
	}
}

func TestValidate_UnknownNetworkName(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Network.Name = "mainnet"

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for unknown network")
	}
}

func TestValidate_NetworkPassphraseMismatch(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Network.Name = NetworkPublic
	cfg.Network.Passphrase = types.TestNetworkPassphrase

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected mismatch error")
	}
	if !strings.Contains(err.Error(), "does not match") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidate_MissingPassphrase(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Network = NetworkConfig{}

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected error for empty passphrase")
	}
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Watch.Debounce = -1

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected error for negative debounce")
	}
}

func TestValidate_ZeroMaxInput(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Input.MaxSize = 0

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected error for zero input.max_size")
	}
}
