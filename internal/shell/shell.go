// Package shell provides shell detection, per-shell prompt snippets, and the
// sentinel-guarded profile block logic used by install and uninstall.
package shell

import (
	"os"
	"path/filepath"
	"strings"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// Shell identifies a supported login shell
type Shell string

const (
	Bash Shell = "bash"
	Zsh  Shell = "zsh"
	Fish Shell = "fish"
)

// Parse converts a shell name into a Shell
func Parse(name string) (Shell, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	default:
		return "", gperrors.NewUnsupportedShellError(name)
	}
}

// Detect infers the user's shell from the SHELL environment variable
func Detect() (Shell, error) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return "", gperrors.NewUnsupportedShellError("")
	}
	return Parse(filepath.Base(shellPath))
}

// ProfilePath returns the startup file gitprompt configures for the given shell
func ProfilePath(sh Shell, homeDir string) (string, error) {
	switch sh {
	case Bash:
		return filepath.Join(homeDir, ".bashrc"), nil
	case Zsh:
		return filepath.Join(homeDir, ".zshrc"), nil
	case Fish:
		return filepath.Join(homeDir, ".config", "fish", "config.fish"), nil
	default:
		return "", gperrors.NewUnsupportedShellError(string(sh))
	}
}
