// Package doctor provides diagnostic functionality for checking the
// gitprompt installation and environment.
package doctor

import (
	"fmt"

	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/tui"
)

// Options contains options for the doctor command
type Options struct {
	BinDir  string // install directory override
	Profile string // profile file override
	Shell   string // shell name override
}

// Action runs diagnostic checks on the gitprompt installation
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	splog.Info("Running gitprompt doctor...")
	splog.Newline()

	var warnings []string
	var errors []string

	splog.Info("Environment:")
	warnings, errors = checkEnvironment(ctx, opts, warnings, errors)

	splog.Newline()

	splog.Info("Installation:")
	warnings, errors = checkInstallation(ctx, opts, warnings, errors)

	splog.Newline()

	splog.Info("Repository:")
	warnings, errors = checkRepository(ctx, warnings, errors)

	splog.Newline()
	switch {
	case len(errors) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errors), len(warnings))
		for _, err := range errors {
			splog.Error("  %s", tui.ColorRed(err))
		}
		for _, warn := range warnings {
			splog.Warn("  %s", tui.ColorYellow(warn))
		}
		return fmt.Errorf("doctor found %d error(s)", len(errors))
	case len(warnings) > 0:
		splog.Info("Doctor found %d warning(s). Your gitprompt setup is mostly healthy.", len(warnings))
		for _, warn := range warnings {
			splog.Warn("  %s", tui.ColorYellow(warn))
		}
	default:
		splog.Info("%s", tui.ColorGreen("✅ All checks passed. Your gitprompt setup is healthy."))
	}

	return nil
}
