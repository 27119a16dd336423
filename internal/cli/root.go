// Package cli wires the cobra commands for gitprompt.
package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions/prompt"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// NewRootCmd creates the root cobra command. Run bare, gitprompt prints the
// prompt segment: that keeps the shell snippet a plain `gitprompt` call.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var color string

	rootCmd := &cobra.Command{
		Use:   "gitprompt",
		Short: "Gitprompt renders a git status segment for your shell prompt",
		Long: `Gitprompt renders a git status segment for your shell prompt:
branch, upstream divergence, and staged/unstaged file counts.

Run bare it prints the segment for the current directory, and prints
nothing outside a git repository. Run 'gitprompt install' to wire it
into your shell.`,
		Version:       buildVersion(version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			return prompt.Action(ctx, prompt.Options{Color: color})
		},
	}

	rootCmd.Flags().StringVar(&color, "color", "", "Color mode: auto, always, or never")

	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newUpdateCmd(version))
	rootCmd.AddCommand(newPreviewCmd())

	return rootCmd
}

// buildVersion formats the --version output from the ldflags build metadata
func buildVersion(version, commit, date string) string {
	out := version
	if commit != "none" {
		out += " (" + commit
		if date != "unknown" {
			out += ", " + date
		}
		out += ")"
	}
	return out
}
