package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions/uninstall"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// newUninstallCmd creates the uninstall command
func newUninstallCmd() *cobra.Command {
	var (
		shellName    string
		profile      string
		binDir       string
		removeBinary bool
	)

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the prompt configuration from your shell profile",
		Long: `Remove the sentinel-delimited gitprompt block from your shell profile.

The installed binary is left in place unless --binary is passed.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return uninstall.Action(ctx, uninstall.Options{
				Shell:        shellName,
				Profile:      profile,
				BinDir:       binDir,
				RemoveBinary: removeBinary,
			})
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "Shell to unconfigure: bash, zsh, or fish (default: detect from $SHELL)")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile file to edit (default: the shell's startup file)")
	cmd.Flags().StringVar(&binDir, "bin-dir", "", "Install directory (default: /usr/local/bin)")
	cmd.Flags().BoolVar(&removeBinary, "binary", false, "Also remove the installed binary")

	_ = cmd.RegisterFlagCompletionFunc("shell", completeShells)

	return cmd
}
