package commands

import (
	"errors"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/logger"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
	"github.com/spf13/cobra"
)

// ErrNotCanonical is returned by check when re-encoding changes the input.
var ErrNotCanonical = errors.New("input is not in canonical form")

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check <type> [base64|-]",
	Short: "Verify that a value is canonically encoded",
	Long: `Decode a base64 XDR value, encode it again and compare.

The command fails when the input does not decode as the type, or when
re-encoding produces different bytes or different base64 text.`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeTypeNames,
	RunE:              runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Read base64 input from a file")
}

// CheckResult is the outcome of a canonical-form check.
type CheckResult struct {
	Type      string
	Bytes     int
	Canonical bool
	Base64    string
	Error     string
}

// Headers implements output.TableRenderer.
func (r *CheckResult) Headers() []string { return []string{"FIELD", "VALUE"} }

// Rows implements output.TableRenderer.
func (r *CheckResult) Rows() [][]string {
	rows := [][]string{
		{"type", r.Type},
		{"bytes", fmt.Sprint(r.Bytes)},
		{"canonical", cmdutil.BoolToYesNo(r.Canonical)},
	}
	if r.Error != "" {
		rows = append(rows, []string{"error", r.Error})
	} else if !r.Canonical {
		rows = append(rows, []string{"canonical base64", r.Base64})
	}
	return rows
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	ctx := cmdutil.NewRunContext(cmd.Context(), "check")

	text, source, err := readTypedInput(cmd, args, checkFile)
	if err != nil {
		return err
	}
	entry, err := cmdutil.Registry().Lookup(args[0])
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithType(entry.Name).WithSource(source))

	result, checkErr := checkValue(entry.Name, text)
	logger.DebugCtx(ctx, "checked", logger.Bytes(result.Bytes), logger.Canonical(result.Canonical))
	if checkErr != nil {
		logger.WarnCtx(ctx, "check failed", logger.ErrorCode(cmdutil.ErrorCodeOf(checkErr)), logger.Err(checkErr))
	}

	printer, err := cmdutil.NewPrinter(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	if err := printer.Print(result); err != nil {
		return err
	}
	if printer.Format() == output.FormatTable {
		switch {
		case checkErr != nil:
			printer.Failure("decode failed")
		case result.Canonical:
			printer.Success("canonical")
		default:
			printer.Failure("not canonical")
		}
	}

	if checkErr != nil {
		return checkErr
	}
	if !result.Canonical {
		return ErrNotCanonical
	}
	return nil
}

// checkValue decodes text as the named type and compares the re-encoding.
func checkValue(name, text string) (*CheckResult, error) {
	result := &CheckResult{Type: name}

	data, err := xdr.DecodeBase64(text)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.Bytes = len(data)

	v, sameBytes, err := cmdutil.Registry().Canonical(name, data)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	again, err := v.ToBase64()
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.Base64 = again
	result.Canonical = sameBytes && again == text
	return result, nil
}
