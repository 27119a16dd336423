package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions/doctor"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var (
		shellName string
		profile   string
		binDir    string
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your gitprompt setup",
		Long: `Run diagnostic checks on your gitprompt installation.

The doctor command checks:
  - Environment: shell detection and PATH
  - Installation: binary location and the profile's sentinel block
  - Repository: state readability when run inside a git repository`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return doctor.Action(ctx, doctor.Options{
				Shell:   shellName,
				Profile: profile,
				BinDir:  binDir,
			})
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "Shell to check (default: detect from $SHELL)")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile file to check")
	cmd.Flags().StringVar(&binDir, "bin-dir", "", "Install directory to check")

	return cmd
}
