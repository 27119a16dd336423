package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
	"gitprompt.dev/gitprompt/internal/status"
)

// checkInstallation verifies the installed binary and the profile block
func checkInstallation(ctx *runtime.Context, opts Options, warnings []string, errs []string) ([]string, []string) {
	splog := ctx.Splog

	binDir := opts.BinDir
	if binDir == "" {
		var err error
		binDir, err = config.GetBinDir(ctx.Home)
		if err != nil {
			errs = append(errs, fmt.Sprintf("config unreadable: %v", err))
			splog.Error("  config unreadable: %v", err)
			return warnings, errs
		}
	}

	binary := filepath.Join(binDir, "gitprompt")
	info, err := os.Stat(binary)
	switch {
	case os.IsNotExist(err):
		warnings = append(warnings, fmt.Sprintf("binary not installed at %s (run 'gitprompt install')", binary))
		splog.Warn("  binary not installed at %s", binary)
	case err != nil:
		errs = append(errs, fmt.Sprintf("cannot stat %s: %v", binary, err))
		splog.Error("  cannot stat %s: %v", binary, err)
	case info.Mode().Perm()&0111 == 0:
		errs = append(errs, fmt.Sprintf("%s is not executable", binary))
		splog.Error("  %s is not executable", binary)
	default:
		splog.Info("  ✅ binary installed at %s", binary)
	}

	profilePath, err := resolveProfilePath(ctx, opts)
	if err != nil {
		errs = append(errs, fmt.Sprintf("cannot resolve profile: %v", err))
		splog.Error("  cannot resolve profile: %v", err)
		return warnings, errs
	}

	data, err := os.ReadFile(profilePath)
	switch {
	case os.IsNotExist(err):
		warnings = append(warnings, fmt.Sprintf("profile %s does not exist (run 'gitprompt install')", profilePath))
		splog.Warn("  profile %s does not exist", profilePath)
	case err != nil:
		errs = append(errs, fmt.Sprintf("cannot read profile %s: %v", profilePath, err))
		splog.Error("  cannot read profile %s: %v", profilePath, err)
	default:
		if f, err := os.OpenFile(profilePath, os.O_WRONLY, 0); err != nil {
			errs = append(errs, fmt.Sprintf("profile %s is not writable: %v", profilePath, err))
			splog.Error("  profile %s is not writable", profilePath)
		} else {
			f.Close()
		}

		contents := string(data)
		beginCount := strings.Count(contents, shell.BeginMarker)
		endCount := strings.Count(contents, shell.EndMarker)
		switch {
		case beginCount == 0:
			warnings = append(warnings, fmt.Sprintf("profile %s has no gitprompt block (run 'gitprompt install')", profilePath))
			splog.Warn("  profile %s has no gitprompt block", profilePath)
		case beginCount > 1 || endCount != beginCount:
			errs = append(errs, fmt.Sprintf("profile %s has mismatched gitprompt markers (%d begin, %d end)", profilePath, beginCount, endCount))
			splog.Error("  profile %s has mismatched gitprompt markers", profilePath)
		case blockStale(contents, opts.Shell):
			warnings = append(warnings, fmt.Sprintf("profile %s has an outdated gitprompt block (re-run 'gitprompt install')", profilePath))
			splog.Warn("  profile %s has an outdated gitprompt block", profilePath)
		default:
			splog.Info("  ✅ profile configured at %s", profilePath)
		}
	}

	return warnings, errs
}

// blockStale reports whether the marker-delimited block in the profile
// differs from the snippet install would write for the resolved shell. An
// unrecognized shell is reported separately by the environment check.
func blockStale(contents string, shellOverride string) bool {
	sh, err := resolveShell(shellOverride)
	if err != nil {
		return false
	}
	expected, err := shell.Block(sh)
	if err != nil {
		return false
	}
	current, ok := shell.ExtractBlock(contents)
	return ok && current != expected
}

// checkRepository verifies the repository state is readable when the doctor
// runs inside one; outside a repository there is nothing to check.
func checkRepository(ctx *runtime.Context, warnings []string, errs []string) ([]string, []string) {
	splog := ctx.Splog

	state, err := status.Read(ctx.WorkDir)
	switch {
	case errors.Is(err, gperrors.ErrNotARepository):
		splog.Info("  not inside a git repository, skipping")
	case err != nil:
		errs = append(errs, fmt.Sprintf("failed to read repository state: %v", err))
		splog.Error("  failed to read repository state: %v", err)
	default:
		splog.Info("  ✅ repository state readable (branch %s)", state.Branch.Name)
	}

	return warnings, errs
}

// resolveProfilePath mirrors install's profile resolution
func resolveProfilePath(ctx *runtime.Context, opts Options) (string, error) {
	if opts.Profile != "" {
		return opts.Profile, nil
	}

	configured, err := config.GetProfile(ctx.Home)
	if err != nil {
		return "", err
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
