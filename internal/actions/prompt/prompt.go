// Package prompt produces the prompt segment for the current repository.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/segment"
	"gitprompt.dev/gitprompt/internal/status"
)

// Options contains options for the prompt command
type Options struct {
	Color string    // color mode override; empty means use config
	Out   io.Writer // segment destination, defaults to stdout
}

// Action prints the segment for the repository containing the working
// directory. Outside a repository it prints nothing and succeeds: the shell
// evaluates this on every prompt, so silence is the contract.
func Action(ctx *runtime.Context, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	state, err := status.Read(ctx.WorkDir)
	if err != nil {
		if errors.Is(err, gperrors.ErrNotARepository) {
			return nil
		}
		return err
	}

	mode := segment.ColorMode(opts.Color)
	if mode == "" {
		configured, err := config.GetColor(ctx.Home)
		if err != nil {
			return err
		}
		mode = segment.ColorMode(configured)
	}

	renderer := segment.NewRenderer(mode)
	if _, err := fmt.Fprint(out, renderer.Render(state)); err != nil {
		return fmt.Errorf("failed to write segment: %w", err)
	}
	return nil
}
