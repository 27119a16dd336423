package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions/update"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// newUpdateCmd creates the update command
func newUpdateCmd(version string) *cobra.Command {
	var (
		tag   string
		check bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update gitprompt to the latest release",
		Long: `Check GitHub releases for a newer gitprompt and replace the running
binary in place. The old binary is kept as a backup until the new one
is verified, and restored if verification fails.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return update.Action(ctx, update.Options{
				CurrentVersion: version,
				Tag:            tag,
				Check:          check,
				Force:          force,
			})
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Install a specific release tag instead of the latest")
	cmd.Flags().BoolVar(&check, "check", false, "Only check whether an update is available")
	cmd.Flags().BoolVar(&force, "force", false, "Update even from a dev build")

	return cmd
}
