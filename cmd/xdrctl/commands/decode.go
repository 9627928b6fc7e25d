package commands

import (
	"context"
	"time"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/registry"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
	"github.com/spf13/cobra"
)

var decodeFile string

var decodeCmd = &cobra.Command{
	Use:   "decode <type> [base64|-]",
	Short: "Decode a base64 XDR value",
	Long: `Decode a base64 XDR value of the given type and print it.

Type names are case-insensitive; run "xdrctl types" for the list.

Examples:
  # Decode a transaction envelope
  xdrctl decode TransactionEnvelope AAAAAgAAAAB...

  # Read from stdin and print JSON
  echo AAAAAwAAAAU= | xdrctl decode scval -o json

  # Read from a file
  xdrctl decode LedgerEntry --file entry.b64`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeTypeNames,
	RunE:              runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "Read base64 input from a file")
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	ctx := cmdutil.NewRunContext(cmd.Context(), "decode")

	text, source, err := readTypedInput(cmd, args, decodeFile)
	if err != nil {
		return err
	}
	lc := logger.FromContext(ctx).WithType(args[0]).WithSource(source)
	ctx = logger.WithContext(ctx, lc)

	v, err := decodeValue(ctx, args[0], text)
	if err != nil {
		return err
	}

	printer, err := cmdutil.NewPrinter(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	return printer.Print(v)
}

// decodeValue decodes base64 text as the named type, logging the outcome.
func decodeValue(ctx context.Context, name, text string) (registry.Value, error) {
	v, err := cmdutil.Registry().New(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := xdr.DecodeBase64(text)
	if err == nil {
		err = v.UnmarshalBinary(data)
	}
	if err != nil {
		logger.WarnCtx(ctx, "decode failed", logger.ErrorCode(cmdutil.ErrorCodeOf(err)), logger.Err(err))
		return nil, err
	}
	logger.DebugCtx(ctx, "decoded", logger.Bytes(len(data)), logger.DurationMs(logger.Duration(start)))
	return v, nil
}

// readTypedInput reads the value for commands shaped "<type> [base64|-]".
func readTypedInput(cmd *cobra.Command, args []string, file string) (text, source string, err error) {
	if file != "" {
		text, err = cmdutil.ReadFileInput(file)
		return text, file, err
	}
	return cmdutil.ReadInput(cmd.InOrStdin(), args[1:])
}

func completeTypeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, e := range cmdutil.Registry().List() {
		names = append(names, e.Name+"\t"+e.Family)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
