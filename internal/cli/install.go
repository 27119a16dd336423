package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions/install"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// newInstallCmd creates the install command
func newInstallCmd() *cobra.Command {
	var (
		shellName   string
		profile     string
		binDir      string
		binary      string
		fromSource  bool
		yes         bool
		profileOnly bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the gitprompt binary and configure your shell",
		Long: `Install gitprompt: copy the binary into the install directory and append
the prompt configuration to your shell profile.

The profile block is delimited by sentinel markers, so running install
again is safe: an existing block is detected and left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return install.Action(ctx, install.Options{
				Shell:       shellName,
				Profile:     profile,
				BinDir:      binDir,
				Binary:      binary,
				FromSource:  fromSource,
				Yes:         yes,
				ProfileOnly: profileOnly,
			})
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "Shell to configure: bash, zsh, or fish (default: detect from $SHELL)")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile file to configure (default: the shell's startup file)")
	cmd.Flags().StringVar(&binDir, "bin-dir", "", "Install directory (default: /usr/local/bin)")
	cmd.Flags().StringVar(&binary, "binary", "", "Pre-built binary to install (default: the running executable)")
	cmd.Flags().BoolVar(&fromSource, "from-source", false, "Build a release binary with the Go toolchain before installing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&profileOnly, "profile-only", false, "Only configure the profile, skip installing the binary")

	_ = cmd.RegisterFlagCompletionFunc("shell", completeShells)

	return cmd
}
