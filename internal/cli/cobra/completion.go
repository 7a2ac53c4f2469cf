package cobra

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts on stdout.

Arguments:
  shell    target shell: bash, zsh or fish

Installation:

  bash (with bash-completion package):
    cmdkit completion bash > ~/.local/share/bash-completion/completions/cmdkit

  zsh (with fpath):
    cmdkit completion zsh > ~/.zsh/completions/_cmdkit
    # ensure ~/.zsh/completions is in fpath before compinit

  fish:
    cmdkit completion fish > ~/.config/fish/completions/cmdkit.fish

After installation, restart your shell.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rootCmd := cmd.Root()
			stdout := cmd.OutOrStdout()

			var genErr error
			switch args[0] {
			case "bash":
				genErr = rootCmd.GenBashCompletionV2(stdout, true)
			case "zsh":
				genErr = rootCmd.GenZshCompletion(stdout)
			case "fish":
				genErr = rootCmd.GenFishCompletion(stdout, true)
			default:
				return errors.New(errors.EUsage, fmt.Sprintf("unsupported shell: %s (supported: bash, zsh, fish)", args[0]))
			}
			if genErr != nil {
				return errors.Wrap(errors.EInternal, "failed to generate completion script", genErr)
			}
			return nil
		},
	}

	return cmd
}
