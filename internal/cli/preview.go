package cli

import (
	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/segment"
	"gitprompt.dev/gitprompt/internal/tui"
)

// newPreviewCmd creates the preview command
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview the prompt segment for sample repository states",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			renderer := segment.NewRenderer(segment.ColorAlways)
			return tui.RunPreview(renderer)
		},
	}
}
