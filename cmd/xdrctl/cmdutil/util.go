// Package cmdutil provides shared helpers for xdrctl commands.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Soneso/stellar-php-sdk-sub004/internal/bytesize"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/config"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/registry"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// SkipConfig is a command annotation key. Commands annotated with "true"
// run without loading the configuration.
const SkipConfig = "xdrctl/skip-config"

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ConfigFile string
	Output     string
	Network    string
	NoColor    bool
	Verbose    bool
}

var (
	cfgMu  sync.Mutex
	loaded *config.Config
)

// LoadConfig loads the configuration once and applies flag overrides.
func LoadConfig() (*config.Config, error) {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	if loaded != nil {
		return loaded, nil
	}

	cfg, err := config.Load(Flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	loaded = cfg
	return cfg, nil
}

// ResetConfig drops the cached configuration.
func ResetConfig() {
	cfgMu.Lock()
	loaded = nil
	cfgMu.Unlock()
}

func applyFlags(cfg *config.Config) error {
	if Flags.Output != "" {
		f, err := output.ParseFormat(Flags.Output)
		if err != nil {
			return err
		}
		cfg.Output = f.String()
	}
	if Flags.Verbose {
		cfg.Logging.Level = "DEBUG"
	}
	if Flags.Network != "" {
		if p, ok := config.PassphraseFor(Flags.Network); ok {
			cfg.Network = config.NetworkConfig{Name: strings.ToLower(Flags.Network), Passphrase: p}
		} else {
			cfg.Network = config.NetworkConfig{Passphrase: Flags.Network}
		}
	}
	return config.Validate(cfg)
}

// InitLogging configures the package logger from cfg.
func InitLogging(cfg *config.Config) error {
	return logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// NewPrinter returns a printer for w using the configured output format.
// Color is used only when w is a terminal and --no-color is not set.
func NewPrinter(w io.Writer, cfg *config.Config) (*output.Printer, error) {
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(w, format, !Flags.NoColor && isTerminal(w)), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Registry returns the type registry used by commands.
func Registry() *registry.Registry {
	return registry.Default()
}

// NewRunContext returns ctx carrying a LogContext with a fresh run id.
func NewRunContext(ctx context.Context, command string) context.Context {
	lc := logger.NewLogContext(command).WithRunID(uuid.NewString())
	return logger.WithContext(ctx, lc)
}

// ErrNoInput is returned when neither an argument nor stdin supplied data.
var ErrNoInput = errors.New("no input: pass base64 as an argument or on stdin")

// ErrInputTooLarge is returned when input exceeds input.max_size.
var ErrInputTooLarge = errors.New("input exceeds input.max_size")

// maxInput returns the configured input limit, or the default before the
// configuration is loaded.
func maxInput() bytesize.ByteSize {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if loaded != nil && loaded.Input.MaxSize > 0 {
		return loaded.Input.MaxSize
	}
	return config.DefaultMaxInput
}

func readLimited(r io.Reader) (string, error) {
	limit := maxInput()
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return "", err
	}
	if uint64(len(data)) > uint64(limit) {
		return "", fmt.Errorf("%w (%s)", ErrInputTooLarge, limit.String())
	}
	return string(data), nil
}

// ReadInput returns the base64 text to process and where it came from.
// A missing argument or "-" reads all of in.
func ReadInput(in io.Reader, args []string) (text, source string, err error) {
	if len(args) > 0 && args[0] != "-" {
		text, source = args[0], "arg"
		if limit := maxInput(); uint64(len(text)) > uint64(limit) {
			return "", source, fmt.Errorf("%w (%s)", ErrInputTooLarge, limit.String())
		}
	} else {
		text, err = readLimited(in)
		if err != nil {
			if errors.Is(err, ErrInputTooLarge) {
				return "", "stdin", err
			}
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		source = "stdin"
	}
	text = CleanBase64(text)
	if text == "" {
		return "", source, ErrNoInput
	}
	return text, source, nil
}

// ReadFileInput reads base64 text from path.
func ReadFileInput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	data, err := readLimited(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	text := CleanBase64(data)
	if text == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoInput)
	}
	return text, nil
}

// CleanBase64 drops all whitespace, so wrapped base64 can be pasted as is.
func CleanBase64(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ErrorCodeOf returns the name of the XDR error class in err's chain, or
// "" when err did not come from the codec.
func ErrorCodeOf(err error) string {
	var xe *xdr.Error
	if errors.As(err, &xe) {
		return xe.Code.String()
	}
	var code xdr.ErrorCode
	if errors.As(err, &code) {
		return code.String()
	}
	return ""
}

// BoolToYesNo converts a boolean to "yes" or "no" string.
func BoolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
