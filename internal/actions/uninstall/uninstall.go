// Package uninstall removes the gitprompt profile block and, optionally,
// the installed binary.
package uninstall

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"gitprompt.dev/gitprompt/internal/config"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
)

// Options contains options for the uninstall command
type Options struct {
	Shell        string // shell name override; empty means detect from $SHELL
	Profile      string // profile file override
	BinDir       string // install directory override
	RemoveBinary bool   // also delete the installed binary
}

// Action removes the marker-delimited block from the profile. The binary is
// only removed when explicitly requested.
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	profilePath, err := resolveProfile(ctx, opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			splog.Info("Profile %s does not exist, nothing to remove", profilePath)
		} else {
			return fmt.Errorf("failed to read profile %s: %w", profilePath, err)
		}
	} else {
		updated, removed := shell.RemoveBlock(string(data))
		if !removed {
			splog.Info("No prompt configuration found in %s", profilePath)
		} else {
			if err := os.WriteFile(profilePath, []byte(updated), 0644); err != nil {
				return fmt.Errorf("failed to write profile %s: %w", profilePath, err)
			}
			splog.Info("Removed prompt configuration from %s", profilePath)
		}
	}

	if !opts.RemoveBinary {
		return nil
	}

	binDir := opts.BinDir
	if binDir == "" {
		binDir, err = config.GetBinDir(ctx.Home)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	binary := filepath.Join(binDir, "gitprompt")
	if _, err := os.Stat(binary); os.IsNotExist(err) {
		splog.Info("Binary %s not found, nothing to remove", binary)
		return nil
	}

	if err := os.Remove(binary); err != nil {
		if !os.IsPermission(err) {
			return fmt.Errorf("failed to remove %s: %w", binary, err)
		}
		if out, sudoErr := exec.Command("sudo", "rm", binary).CombinedOutput(); sudoErr != nil {
			return fmt.Errorf("failed to remove %s: %v: %s", binary, sudoErr, out)
		}
	}
	splog.Info("Removed %s", binary)

	return nil
}

// resolveProfile mirrors the install-time profile resolution so uninstall
// edits the same file install wrote.
func resolveProfile(ctx *runtime.Context, opts Options) (string, error) {
	if opts.Profile != "" {
		return opts.Profile, nil
	}

	configured, err := config.GetProfile(ctx.Home)
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	if configured != "" {
		return configured, nil
	}

	sh, err := resolveShell(opts.Shell)
	if err != nil {
		return "", err
	}
	return shell.ProfilePath(sh, ctx.Home)
}

func resolveShell(override string) (shell.Shell, error) {
	if override != "" {
		return shell.Parse(override)
	}
	return shell.Detect()
}
