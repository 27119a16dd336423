package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitprompt.dev/gitprompt/internal/config"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
)

// checkEnvironment performs shell and PATH checks
func checkEnvironment(ctx *runtime.Context, opts Options, warnings []string, errors []string) ([]string, []string) {
	splog := ctx.Splog

	sh, err := resolveShell(opts.Shell)
	if err != nil {
		errors = append(errors, fmt.Sprintf("shell not recognized: %v", err))
		splog.Error("  shell not recognized: %v", err)
	} else {
		splog.Info("  ✅ shell: %s", sh)
	}

	binDir := opts.BinDir
	if binDir == "" {
		binDir, err = config.GetBinDir(ctx.Home)
		if err != nil {
			errors = append(errors, fmt.Sprintf("config unreadable: %v", err))
			splog.Error("  config unreadable: %v", err)
			return warnings, errors
		}
	}

	if onPath(binDir) {
		splog.Info("  ✅ %s is on PATH", binDir)
	} else {
		warnings = append(warnings, fmt.Sprintf("%s is not on PATH; the prompt snippet will not find gitprompt", binDir))
		splog.Warn("  %s is not on PATH", binDir)
	}

	return warnings, errors
}

// onPath reports whether dir appears in the PATH environment variable
func onPath(dir string) bool {
	cleaned := filepath.Clean(dir)
	for _, entry := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if entry != "" && filepath.Clean(entry) == cleaned {
			return true
		}
	}
	return false
}

func resolveShell(override string) (shell.Shell, error) {
	if override != "" {
		return shell.Parse(override)
	}
	return shell.Detect()
}
