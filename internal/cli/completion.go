package cli

import (
	"github.com/spf13/cobra"
)

// completeShells is a helper for RegisterFlagCompletionFunc that returns the
// shells gitprompt can configure.
func completeShells(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"bash", "zsh", "fish"}, cobra.ShellCompDirectiveNoFileComp
}
