package commands

import (
	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/spf13/cobra"
)

var typesFamily string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the types xdrctl can decode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}
		printer, err := cmdutil.NewPrinter(cmd.OutOrStdout(), cfg)
		if err != nil {
			return err
		}

		table := output.NewTableData("TYPE", "FAMILY")
		var names []string
		for _, e := range cmdutil.Registry().List() {
			if typesFamily != "" && e.Family != typesFamily {
				continue
			}
			table.AddRow(e.Name, e.Family)
			names = append(names, e.Name)
		}
		if printer.Format() == output.FormatTable {
			return printer.Print(table)
		}
		return printer.Print(names)
	},
}

func init() {
	typesCmd.Flags().StringVar(&typesFamily, "family", "", "Only list one family (accounts|ledger|operations|transactions|soroban)")
}
