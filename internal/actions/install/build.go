package install

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// buildOutputEnv carries the artifact path into the build invocation
const buildOutputEnv = "GITPROMPT_BUILD_OUTPUT"

// buildArtifact runs the release build and returns the path of the produced
// binary. The invocation can be overridden for tests; either way the output
// must land at $GITPROMPT_BUILD_OUTPUT or the build counts as failed.
func buildArtifact(ctx *runtime.Context, override []string) (string, error) {
	outDir, err := os.MkdirTemp("", "gitprompt-build-*")
	if err != nil {
		return "", fmt.Errorf("failed to create build directory: %w", err)
	}
	artifact := filepath.Join(outDir, "gitprompt")

	args := override
	if len(args) == 0 {
		args = []string{"go", "build", "-trimpath", "-ldflags", "-s -w", "-o", artifact, "./cmd/gitprompt"}
	}

	ctx.Splog.Info("Building release binary...")
	ctx.Splog.Debug("build command: %s", strings.Join(args, " "))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = ctx.WorkDir
	cmd.Env = append(os.Environ(), buildOutputEnv+"="+artifact)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", gperrors.NewBuildError(strings.Join(args, " "), strings.TrimSpace(string(output)), err)
	}

	if _, err := os.Stat(artifact); err != nil {
		return "", gperrors.NewBuildError(strings.Join(args, " "), "build produced no artifact", err)
	}

	return artifact, nil
}
