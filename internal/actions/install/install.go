// Package install sets up gitprompt: it places the binary in the install
// directory and appends the prompt snippet to the user's shell profile,
// guarded by sentinel markers so repeated runs never duplicate the block.
package install

import (
	"fmt"
	"os"
	"path/filepath"

	"gitprompt.dev/gitprompt/internal/config"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
	"gitprompt.dev/gitprompt/internal/tui"
)

// Options contains options for the install command
type Options struct {
	Shell        string   // shell name override; empty means detect from $SHELL
	Profile      string   // profile file override
	BinDir       string   // install directory override
	Binary       string   // pre-built artifact to install; empty means the running executable
	FromSource   bool     // build the artifact with the Go toolchain first
	BuildCommand []string // release build invocation override, used by tests
	Yes          bool     // skip confirmation prompts
	ProfileOnly  bool     // skip the copy step, only configure the profile
}

// Action installs the gitprompt binary and configures the shell profile.
// Steps run strictly in order: build, copy, profile append. A failed step
// aborts everything after it.
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	sh, err := resolveShell(opts.Shell)
	if err != nil {
		return err
	}

	profilePath, err := resolveProfile(ctx, opts.Profile, sh)
	if err != nil {
		return err
	}

	if !opts.ProfileOnly {
		artifact, err := resolveArtifact(ctx, opts)
		if err != nil {
			return err
		}

		binDir := opts.BinDir
		if binDir == "" {
			binDir, err = config.GetBinDir(ctx.Home)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}

		dest := filepath.Join(binDir, "gitprompt")
		if err := copyBinary(splog, artifact, dest, opts.Yes); err != nil {
			return err
		}
		splog.Info("Installed gitprompt to %s", tui.ColorCyan(dest))
	}

	changed, err := appendProfile(profilePath, sh)
	if err != nil {
		return err
	}

	if !changed {
		splog.Info("Prompt already configured in %s, leaving it untouched", profilePath)
		return nil
	}

	splog.Info("Added prompt configuration to %s", profilePath)
	splog.Tip("Restart your shell or source %s to pick it up", profilePath)
	return nil
}

// resolveShell parses the override or detects the shell from the environment
func resolveShell(override string) (shell.Shell, error) {
	if override != "" {
		return shell.Parse(override)
	}
	return shell.Detect()
}

// resolveProfile picks the profile file: flag override, then config override,
// then the shell's default startup file.
func resolveProfile(ctx *runtime.Context, override string, sh shell.Shell) (string, error) {
	if override != "" {
		return override, nil
	}

	configured, err := config.GetProfile(ctx.Home)
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	if configured != "" {
		return configured, nil
	}

	return shell.ProfilePath(sh, ctx.Home)
}

// resolveArtifact returns the binary to install: an explicit path, a fresh
// release build, or the currently running executable.
func resolveArtifact(ctx *runtime.Context, opts Options) (string, error) {
	if opts.Binary != "" {
		if _, err := os.Stat(opts.Binary); err != nil {
			return "", fmt.Errorf("binary %s does not exist: %w", opts.Binary, err)
		}
		return opts.Binary, nil
	}

	if opts.FromSource {
		return buildArtifact(ctx, opts.BuildCommand)
	}

	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate running executable: %w", err)
	}
	return executable, nil
}

// appendProfile upserts the marker-delimited snippet into the profile file,
// creating the file when it does not exist. Returns whether the file changed.
func appendProfile(profilePath string, sh shell.Shell) (bool, error) {
	block, err := shell.Block(sh)
	if err != nil {
		return false, err
	}

	contents := ""
	data, err := os.ReadFile(profilePath)
	switch {
	case err == nil:
		contents = string(data)
	case os.IsNotExist(err):
		// First run against a fresh profile, start from empty.
	default:
		return false, fmt.Errorf("failed to read profile %s: %w", profilePath, err)
	}

	updated, changed := shell.UpsertBlock(contents, block)
	if !changed {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(profilePath), 0755); err != nil {
		return false, fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := os.WriteFile(profilePath, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("failed to write profile %s: %w", profilePath, err)
	}
	return true, nil
}
