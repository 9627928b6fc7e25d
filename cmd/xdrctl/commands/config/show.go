package config

import (
	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/internal/cli/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Display the configuration after defaults, environment variables and
flags have been applied. Output is YAML unless -o json is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if cmdutil.Flags.Output == string(output.FormatJSON) {
			return output.PrintJSON(w, cfg)
		}
		return output.PrintYAML(w, cfg)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
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
		printer.Success("configuration is valid")
		return nil
	},
}
