package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/config"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func TestReadInput(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantText   string
		wantSource string
		wantErr    error
	}{
		{name: "argument", args: []string{"AAAA AAAA"}, wantText: "AAAAAAAA", wantSource: "arg"},
		{name: "stdin", stdin: "AAAA\r\nAAAA\n", wantText: "AAAAAAAA", wantSource: "stdin"},
		{name: "dash reads stdin", stdin: "AAAAAA==", args: []string{"-"}, wantText: "AAAAAA==", wantSource: "stdin"},
		{name: "empty stdin", stdin: " \n\t", wantSource: "stdin", wantErr: ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, source, err := ReadInput(strings.NewReader(tt.stdin), tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadInput() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadInput() error = %v", err)
			}
			if text != tt.wantText || source != tt.wantSource {
				t.Errorf("ReadInput() = %q, %q, want %q, %q", text, source, tt.wantText, tt.wantSource)
			}
		})
	}
}

func TestReadFileInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v.b64")
	if err := os.WriteFile(path, []byte("AAAA\nAAAA\n"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadFileInput(path)
	if err != nil {
		t.Fatalf("ReadFileInput() error = %v", err)
	}
	if text != "AAAAAAAA" {
		t.Errorf("ReadFileInput() = %q", text)
	}

	empty := filepath.Join(dir, "empty.b64")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileInput(empty); !errors.Is(err, ErrNoInput) {
		t.Errorf("Expected ErrNoInput, got %v", err)
	}
	if _, err := ReadFileInput(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadInput_MaxSize(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDRCTL_INPUT_MAX_SIZE", "8")
	saved := *Flags
	t.Cleanup(func() {
		*Flags = saved
		ResetConfig()
	})
	*Flags = GlobalFlags{}
	ResetConfig()
	if _, err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if _, _, err := ReadInput(strings.NewReader("AAAAAAAA"), nil); err != nil {
		t.Errorf("ReadInput() at the limit error = %v", err)
	}
	if _, _, err := ReadInput(strings.NewReader("AAAAAAAAAAAA"), nil); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("ReadInput() stdin error = %v, want ErrInputTooLarge", err)
	}
	if _, _, err := ReadInput(nil, []string{"AAAAAAAAAAAA"}); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("ReadInput() arg error = %v, want ErrInputTooLarge", err)
	}

	path := filepath.Join(t.TempDir(), "big.b64")
	if err := os.WriteFile(path, []byte("AAAAAAAAAAAA"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileInput(path); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("ReadFileInput() error = %v, want ErrInputTooLarge", err)
	}
}

func TestErrorCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{xdr.NewError(xdr.ErrInvalidValue, "x"), "InvalidValue"},
		{fmt.Errorf("wrapped: %w", &xdr.Error{Code: xdr.ErrBounds, Offset: 4}), "Bounds"},
		{xdr.ErrTrailingData, "TrailingData"},
		{errors.New("plain"), ""},
	}
	for _, tt := range tests {
		if got := ErrorCodeOf(tt.err); got != tt.want {
			t.Errorf("ErrorCodeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	saved := *Flags
	t.Cleanup(func() {
		*Flags = saved
		ResetConfig()
	})

	*Flags = GlobalFlags{Output: "yml", Network: "TESTNET", Verbose: true}
	ResetConfig()
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Output = %q, want yaml", cfg.Output)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Level = %q, want DEBUG", cfg.Logging.Level)
	}
	if cfg.Network.Name != "testnet" || cfg.Network.Passphrase != types.TestNetworkPassphrase {
		t.Errorf("Network = %+v", cfg.Network)
	}

	again, err := LoadConfig()
	if err != nil || again != cfg {
		t.Error("LoadConfig should return the cached config")
	}

	*Flags = GlobalFlags{Output: "xml"}
	ResetConfig()
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for invalid output flag")
	}
}

func TestNewPrinter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.GetDefaultConfig()
	cfg.Output = "json"

	p, err := NewPrinter(&buf, cfg)
	if err != nil {
		t.Fatalf("NewPrinter() error = %v", err)
	}
	if p.Format() != output.FormatJSON {
		t.Errorf("Format() = %v", p.Format())
	}
	if p.ColorEnabled() {
		t.Error("Color should be off for a non-terminal writer")
	}
}

func TestNewRunContext(t *testing.T) {
	ctx := NewRunContext(context.Background(), "decode")
	lc := logger.FromContext(ctx)
	if lc == nil {
		t.Fatal("Expected a LogContext")
	}
	if lc.Command != "decode" {
		t.Errorf("Command = %q", lc.Command)
	}
	if len(lc.RunID) != 36 {
		t.Errorf("RunID %q is not a UUID", lc.RunID)
	}
	if other := logger.FromContext(NewRunContext(context.Background(), "decode")); other.RunID == lc.RunID {
		t.Error("Run ids should differ")
	}
}

func TestBoolToYesNo(t *testing.T) {
	if BoolToYesNo(true) != "yes" || BoolToYesNo(false) != "no" {
		t.Error("BoolToYesNo mismatch")
	}
}
