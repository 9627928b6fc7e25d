package config

import (
	"strings"
	"time"

	"github.com/Soneso/stellar-php-sdk-sub004/internal/bytesize"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
)

// Well-known network names accepted in NetworkConfig.Name.
const (
	NetworkPublic    = "public"
	NetworkTestnet   = "testnet"
	NetworkFuturenet = "futurenet"
)

var passphrases = map[string]string{
	NetworkPublic:    types.PublicNetworkPassphrase,
	NetworkTestnet:   types.TestNetworkPassphrase,
	NetworkFuturenet: types.FutureNetworkPassphrase,
}

// DefaultMaxInput is the default input.max_size.
const DefaultMaxInput = 16 * bytesize.MiB

// PassphraseFor returns the passphrase of a well-known network.
func PassphraseFor(name string) (string, bool) {
	p, ok := passphrases[strings.ToLower(name)]
	return p, ok
}

// ApplyDefaults fills zero values with defaults. Explicit values are kept.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	if cfg.Output == "" {
		cfg.Output = "table"
	}
	applyNetworkDefaults(&cfg.Network)
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 100 * time.Millisecond
	}
	if cfg.Input.MaxSize == 0 {
		cfg.Input.MaxSize = DefaultMaxInput
	}
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize so both "debug" and "DEBUG" are accepted
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyNetworkDefaults(cfg *NetworkConfig) {
	cfg.Name = strings.ToLower(cfg.Name)
	if cfg.Name == "" && cfg.Passphrase == "" {
		cfg.Name = NetworkPublic
	}
	if cfg.Passphrase == "" {
		cfg.Passphrase, _ = PassphraseFor(cfg.Name)
	}
}

// GetDefaultConfig returns a Config with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
