package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions/prompt"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// newPromptCmd creates the prompt command, the explicit spelling of the
// bare invocation
func newPromptCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt segment for the current directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			return prompt.Action(ctx, prompt.Options{Color: color})
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Color mode: auto, always, or never")

	return cmd
}
