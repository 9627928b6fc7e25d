package commands

import (
	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a shell completion script for xdrctl.

Bash:
  $ xdrctl completion bash > /etc/bash_completion.d/xdrctl

Zsh:
  $ xdrctl completion zsh > "${fpath[1]}/_xdrctl"

Fish:
  $ xdrctl completion fish > ~/.config/fish/completions/xdrctl.fish

PowerShell:
  PS> xdrctl completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	Annotations:           map[string]string{cmdutil.SkipConfig: "true"},
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(w, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(w)
		case "fish":
			return cmd.Root().GenFishCompletion(w, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(w)
		}
		return nil
	},
}
