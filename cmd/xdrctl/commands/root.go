// Package commands implements the xdrctl command tree.
package commands

import (
	"os"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	configcmd "github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/commands/config"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xdrctl",
	Short: "Inspect Stellar XDR values",
	Long: `xdrctl decodes, checks and hashes base64 XDR values of the Stellar
protocol: transaction envelopes, ledger entries, Soroban values and more.

Input is read from the first argument, or from stdin when the argument is
omitted or "-".

Use "xdrctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmdutil.Flags.ConfigFile, _ = cmd.Flags().GetString("config")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.Network, _ = cmd.Flags().GetString("network")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")

		if cmd.Annotations[cmdutil.SkipConfig] == "true" {
			return nil
		}
		cmdutil.ResetConfig()
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}
		return cmdutil.InitLogging(cfg)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: $XDG_CONFIG_HOME/xdrctl/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network name (public|testnet|futurenet) or passphrase")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configcmd.Cmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}

// Exit prints an error and exits with code 1.
func Exit(format string, args ...any) {
	PrintErr(format, args...)
	os.Exit(1)
}
