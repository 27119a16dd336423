package uninstall_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitprompt.dev/gitprompt/internal/actions/install"
	"gitprompt.dev/gitprompt/internal/actions/uninstall"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
	"gitprompt.dev/gitprompt/testhelpers"
)

func TestUninstall(t *testing.T) {
	t.Parallel()

	t.Run("removes the block install added", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)
		profile := scene.WriteProfile(t, ".zshrc", "export EDITOR=vim\n")

		binary := filepath.Join(t.TempDir(), "gitprompt")
		require.NoError(t, os.WriteFile(binary, []byte("bin"), 0755))
		binDir := t.TempDir()

		require.NoError(t, install.Action(ctx, install.Options{
			Shell:   "zsh",
			Profile: profile,
			BinDir:  binDir,
			Binary:  binary,
			Yes:     true,
		}))

		require.NoError(t, uninstall.Action(ctx, uninstall.Options{
			Shell:   "zsh",
			Profile: profile,
		}))

		contents := scene.ReadProfile(t, profile)
		require.Equal(t, "export EDITOR=vim\n", contents)
		require.NotContains(t, contents, shell.BeginMarker)

		// Binary stays unless explicitly requested.
		_, err := os.Stat(filepath.Join(binDir, "gitprompt"))
		require.NoError(t, err)
	})

	t.Run("removes the binary when requested", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)
		profile := scene.WriteProfile(t, ".bashrc", "")

		binDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(binDir, "gitprompt"), []byte("bin"), 0755))

		require.NoError(t, uninstall.Action(ctx, uninstall.Options{
			Shell:        "bash",
			Profile:      profile,
			BinDir:       binDir,
			RemoveBinary: true,
		}))

		_, err := os.Stat(filepath.Join(binDir, "gitprompt"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("is a no-op on a profile without the block", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)
		profile := scene.WriteProfile(t, ".bashrc", "alias ll='ls -l'\n")

		require.NoError(t, uninstall.Action(ctx, uninstall.Options{
			Shell:   "bash",
			Profile: profile,
		}))
		require.Equal(t, "alias ll='ls -l'\n", scene.ReadProfile(t, profile))
	})

	t.Run("tolerates a missing profile file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)

		require.NoError(t, uninstall.Action(ctx, uninstall.Options{
			Shell:   "bash",
			Profile: filepath.Join(scene.Home, ".bashrc"),
		}))
	})
}
