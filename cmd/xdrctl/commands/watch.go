package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/timeutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <type> <file>",
	Short: "Decode a file every time it changes",
	Long: `Decode the base64 value stored in a file, then decode it again each
time the file is written. Bursts of writes are collapsed using the
watch.debounce setting.

Example:
  xdrctl watch TransactionEnvelope ./tx.b64 -o yaml`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeTypeNames,
	RunE:              runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	entry, err := cmdutil.Registry().Lookup(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = cmdutil.NewRunContext(ctx, "watch")
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithType(entry.Name).WithSource(path))

	printer, err := cmdutil.NewPrinter(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}

	render := func() {
		text, err := cmdutil.ReadFileInput(path)
		if err != nil {
			printer.Warning(err.Error())
			return
		}
		v, err := cmdutil.Registry().Decode(entry.Name, text)
		if err != nil {
			logger.WarnCtx(ctx, "decode failed", logger.ErrorCode(cmdutil.ErrorCodeOf(err)), logger.Err(err))
			printer.Failure(err.Error())
			return
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "--- %s %s ---\n", timeutil.Clock(time.Now()), path)
		if err := printer.Print(v); err != nil {
			logger.ErrorCtx(ctx, "print failed", logger.Err(err))
		}
	}

	render()
	logger.InfoCtx(ctx, "watching", logger.Path(path), "debounce", cfg.Watch.Debounce.String())
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)...\n", path)
	return watchFile(ctx, path, cfg.Watch.Debounce, render)
}

// watchFile calls onChange after path is written or re-created. Events
// closer together than debounce produce one call. It returns when ctx ends.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.DebugCtx(ctx, "file changed", logger.Path(abs), "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
