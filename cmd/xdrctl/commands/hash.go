package commands

import (
	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash [base64|-]",
	Short: "Compute the hash of a transaction envelope",
	Long: `Decode a TransactionEnvelope and print its transaction hash on the
configured network. Use --network to pick another network for one call.

Legacy v0 envelopes hash the same as the equivalent v1 transaction.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHash,
}

// HashResult is the output of the hash command.
type HashResult struct {
	Network    string
	Passphrase string
	Envelope   string
	Hash       types.Hash
}

func runHash(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	ctx := cmdutil.NewRunContext(cmd.Context(), "hash")

	text, source, err := cmdutil.ReadInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithType("TransactionEnvelope").WithSource(source))

	v, err := decodeValue(ctx, "TransactionEnvelope", text)
	if err != nil {
		return err
	}
	env := v.(*types.TransactionEnvelope)

	h, err := env.Hash(cfg.Network.Passphrase)
	if err != nil {
		return err
	}
	logger.DebugCtx(ctx, "hashed", logger.Network(cfg.Network.Passphrase), logger.Hash(h.String()))

	result := HashResult{
		Network:    cfg.Network.Name,
		Passphrase: cfg.Network.Passphrase,
		Envelope:   env.Type.String(),
		Hash:       h,
	}

	printer, err := cmdutil.NewPrinter(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	if printer.Format() != output.FormatTable {
		return printer.Print(result)
	}
	network := result.Network
	if network == "" {
		network = "custom"
	}
	return output.PrintKeyValue(printer.Writer(), [][2]string{
		{"network", network},
		{"passphrase", result.Passphrase},
		{"envelope", result.Envelope},
		{"hash", result.Hash.String()},
	})
}
