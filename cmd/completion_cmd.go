package cmd

import (
	"os"

	"github.com/daedaleanai/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion bash|zsh|fish",
	Short: "Generate completion script",
	Long: `To load completions:
Bash:
  $ source <(crateaudit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ crateaudit completion bash > /etc/bash_completion.d/crateaudit
  # macOS:
  $ crateaudit completion bash > /usr/local/etc/bash_completion.d/crateaudit
Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ crateaudit completion zsh > "${fpath[1]}/_crateaudit"
  # You will need to start a new shell for this setup to take effect.
fish:
  $ crateaudit completion fish | source
  # To load completions for each session, execute once:
  $ crateaudit completion fish > ~/.config/fish/completions/crateaudit.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		}
	},
	Hidden: true,
}

// Registers the completion subcommand
func init() {
	rootCmd.AddCommand(completionCmd)
}
