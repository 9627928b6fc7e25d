package config

import (
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{cmdutil.SkipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cmdutil.Flags.ConfigFile
		var err error
		if path != "" {
			err = config.InitConfigToPath(path, initForce)
		} else {
			path, err = config.InitConfig(initForce)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
