// Package runtime provides the execution context for gitprompt commands.
//
// It encapsulates shared dependencies needed by actions: the logger, the
// user's home directory, and the working directory the command runs in.
package runtime

import (
	"fmt"
	"os"

	"gitprompt.dev/gitprompt/internal/tui"
)

// Context provides access to shared dependencies for commands
type Context struct {
	Splog   *tui.Splog
	Home    string
	WorkDir string
}

// NewContext creates a context with explicit home and working directories.
// Used by tests to keep commands away from the real home directory.
func NewContext(home string, workDir string) *Context {
	return &Context{
		Splog:   tui.NewSplog(),
		Home:    home,
		WorkDir: workDir,
	}
}

// GetContext creates the context for a command invocation, resolving the
// home and working directories from the environment and enabling file
// logging when configured.
func GetContext() (*Context, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	ctx := &Context{Home: home, WorkDir: workDir}

	if os.Getenv("GITPROMPT_LOG") != "" {
		splog, err := tui.NewSplogWithFile(tui.GetLogFilePath())
		if err != nil {
			return nil, err
		}
		ctx.Splog = splog
	} else {
		ctx.Splog = tui.NewSplog()
	}

	return ctx, nil
}
