package install_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitprompt.dev/gitprompt/internal/actions/install"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
	"gitprompt.dev/gitprompt/testhelpers"
)

// fixture builds an install context with a fake pre-built binary and a
// writable bin dir, so no test ever reaches for sudo or the go toolchain.
type fixture struct {
	ctx     *runtime.Context
	scene   *testhelpers.Scene
	binary  string
	binDir  string
	profile string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	scene := testhelpers.NewScene(t)

	binary := filepath.Join(t.TempDir(), "gitprompt")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0755))

	return &fixture{
		ctx:     runtime.NewContext(scene.Home, scene.Dir),
		scene:   scene,
		binary:  binary,
		binDir:  t.TempDir(),
		profile: filepath.Join(scene.Home, ".bashrc"),
	}
}

func (f *fixture) options() install.Options {
	return install.Options{
		Shell:   "bash",
		Profile: f.profile,
		BinDir:  f.binDir,
		Binary:  f.binary,
		Yes:     true,
	}
}

func TestInstall(t *testing.T) {
	t.Parallel()

	t.Run("copies the binary and appends the profile block", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		require.NoError(t, install.Action(f.ctx, f.options()))

		installed, err := os.Stat(filepath.Join(f.binDir, "gitprompt"))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0755), installed.Mode().Perm())

		contents := f.scene.ReadProfile(t, f.profile)
		require.Equal(t, 1, strings.Count(contents, shell.BeginMarker))
		require.Equal(t, 1, strings.Count(contents, shell.EndMarker))
	})

	t.Run("creates a missing profile file with exactly one block", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := os.Stat(f.profile)
		require.True(t, os.IsNotExist(err))

		require.NoError(t, install.Action(f.ctx, f.options()))

		contents := f.scene.ReadProfile(t, f.profile)
		require.Equal(t, 1, strings.Count(contents, shell.BeginMarker))
	})

	t.Run("empty profile ends up with exactly the block", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		f.scene.WriteProfile(t, ".bashrc", "")

		require.NoError(t, install.Action(f.ctx, f.options()))

		block, err := shell.Block(shell.Bash)
		require.NoError(t, err)
		require.Equal(t, block+"\n", f.scene.ReadProfile(t, f.profile))
	})

	t.Run("second run leaves the profile byte-for-byte unchanged", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		require.NoError(t, install.Action(f.ctx, f.options()))
		first := f.scene.ReadProfile(t, f.profile)

		require.NoError(t, install.Action(f.ctx, f.options()))
		second := f.scene.ReadProfile(t, f.profile)

		require.Equal(t, first, second)
		require.Equal(t, 1, strings.Count(second, shell.BeginMarker))
	})

	t.Run("skips append when marker already present in profile", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		existing := "# mine\n" + shell.BeginMarker + "\n# hand edited\n" + shell.EndMarker + "\n"
		f.scene.WriteProfile(t, ".bashrc", existing)

		require.NoError(t, install.Action(f.ctx, f.options()))
		require.Equal(t, existing, f.scene.ReadProfile(t, f.profile))
	})

	t.Run("preserves existing profile contents", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		f.scene.WriteProfile(t, ".bashrc", "export PATH=$PATH:/opt/bin\n")

		require.NoError(t, install.Action(f.ctx, f.options()))

		contents := f.scene.ReadProfile(t, f.profile)
		require.True(t, strings.HasPrefix(contents, "export PATH=$PATH:/opt/bin\n"))
		require.Contains(t, contents, shell.BeginMarker)
	})

	t.Run("profile-only skips the copy step", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		opts := f.options()
		opts.ProfileOnly = true
		require.NoError(t, install.Action(f.ctx, opts))

		_, err := os.Stat(filepath.Join(f.binDir, "gitprompt"))
		require.True(t, os.IsNotExist(err))
		require.Contains(t, f.scene.ReadProfile(t, f.profile), shell.BeginMarker)
	})

	t.Run("rejects unsupported shells", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		opts := f.options()
		opts.Shell = "tcsh"
		err := install.Action(f.ctx, opts)
		require.ErrorIs(t, err, gperrors.ErrUnsupportedShell)
	})

	t.Run("fails when the named binary does not exist", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		opts := f.options()
		opts.Binary = filepath.Join(t.TempDir(), "missing")
		require.Error(t, install.Action(f.ctx, opts))

		_, err := os.Stat(f.profile)
		require.True(t, os.IsNotExist(err), "profile must not be touched after a failed copy step")
	})

	t.Run("copy failure leaves the profile untouched", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		// A regular file where the bin dir should be makes the copy itself
		// fail, past the artifact check and without reaching the sudo retry.
		f.binDir = filepath.Join(t.TempDir(), "notadir")
		require.NoError(t, os.WriteFile(f.binDir, []byte("occupied"), 0644))

		err := install.Action(f.ctx, f.options())
		require.ErrorIs(t, err, gperrors.ErrCopyFailed)

		_, statErr := os.Stat(f.profile)
		require.True(t, os.IsNotExist(statErr), "profile must not be created when the copy fails")
	})
}

func TestInstallFromSource(t *testing.T) {
	t.Parallel()

	t.Run("installs the built artifact", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		opts := f.options()
		opts.Binary = ""
		opts.FromSource = true
		opts.BuildCommand = []string{"sh", "-c", `printf fake > "$GITPROMPT_BUILD_OUTPUT"`}

		require.NoError(t, install.Action(f.ctx, opts))

		data, err := os.ReadFile(filepath.Join(f.binDir, "gitprompt"))
		require.NoError(t, err)
		require.Equal(t, "fake", string(data))
	})

	t.Run("build failure aborts before copy and profile append", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		opts := f.options()
		opts.Binary = ""
		opts.FromSource = true
		opts.BuildCommand = []string{"false"}

		err := install.Action(f.ctx, opts)
		require.ErrorIs(t, err, gperrors.ErrBuildFailed)

		_, statErr := os.Stat(filepath.Join(f.binDir, "gitprompt"))
		require.True(t, os.IsNotExist(statErr))
		_, statErr = os.Stat(f.profile)
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("build that produces no artifact counts as failed", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		opts := f.options()
		opts.Binary = ""
		opts.FromSource = true
		opts.BuildCommand = []string{"true"}

		err := install.Action(f.ctx, opts)
		require.ErrorIs(t, err, gperrors.ErrBuildFailed)
	})
}
