package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and cross-field rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	// A known network name must not be paired with another network's passphrase.
	if cfg.Network.Name != "" {
		want, ok := PassphraseFor(cfg.Network.Name)
		if ok && cfg.Network.Passphrase != want {
			return fmt.Errorf("network %q does not match passphrase %q", cfg.Network.Name, cfg.Network.Passphrase)
		}
	}

	if strings.ContainsAny(cfg.Network.Passphrase, "\r\n") {
		return fmt.Errorf("network passphrase must be a single line")
	}
	return nil
}
