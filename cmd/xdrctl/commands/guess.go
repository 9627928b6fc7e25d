package commands

import (
	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/registry"
	"github.com/spf13/cobra"
)

var guessCmd = &cobra.Command{
	Use:   "guess [base64|-]",
	Short: "List the types a value decodes as",
	Long: `Try every registered type and list those that decode the input
completely and re-encode it to the same bytes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGuess,
}

// GuessList renders guess matches.
type GuessList []registry.Match

// Headers implements output.TableRenderer.
func (l GuessList) Headers() []string { return []string{"TYPE", "FAMILY"} }

// Rows implements output.TableRenderer.
func (l GuessList) Rows() [][]string {
	rows := make([][]string, len(l))
	for i, m := range l {
		rows[i] = []string{m.Name, m.Family}
	}
	return rows
}

type guessMatch struct {
	Type   string
	Family string
}

func runGuess(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	ctx := cmdutil.NewRunContext(cmd.Context(), "guess")

	text, source, err := cmdutil.ReadInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithSource(source))

	matches, err := cmdutil.Registry().Guess(ctx, text)
	if err != nil {
		logger.WarnCtx(ctx, "guess failed", logger.Err(err))
		return err
	}
	logger.DebugCtx(ctx, "guessed", logger.Matches(len(matches)))

	printer, err := cmdutil.NewPrinter(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		printer.Warning("no type decodes this input canonically")
		return nil
	}
	if printer.Format() == output.FormatTable {
		return printer.Print(GuessList(matches))
	}

	out := make([]guessMatch, len(matches))
	for i, m := range matches {
		out[i] = guessMatch{Type: m.Name, Family: m.Family}
	}
	return printer.Print(out)
}
