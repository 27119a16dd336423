package doctor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitprompt.dev/gitprompt/internal/actions/doctor"
	"gitprompt.dev/gitprompt/internal/actions/install"
	"gitprompt.dev/gitprompt/internal/runtime"
	"gitprompt.dev/gitprompt/internal/shell"
	"gitprompt.dev/gitprompt/testhelpers"
)

func TestDoctor(t *testing.T) {
	t.Parallel()

	t.Run("passes after a successful install", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)

		binary := filepath.Join(t.TempDir(), "gitprompt")
		require.NoError(t, os.WriteFile(binary, []byte("bin"), 0755))
		binDir := t.TempDir()
		profile := filepath.Join(scene.Home, ".bashrc")

		require.NoError(t, install.Action(ctx, install.Options{
			Shell:   "bash",
			Profile: profile,
			BinDir:  binDir,
			Binary:  binary,
			Yes:     true,
		}))

		// PATH warning is expected for a temp bin dir; warnings don't fail doctor.
		require.NoError(t, doctor.Action(ctx, doctor.Options{
			Shell:   "bash",
			Profile: profile,
			BinDir:  binDir,
		}))
	})

	t.Run("warns but succeeds when nothing is installed", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)

		require.NoError(t, doctor.Action(ctx, doctor.Options{
			Shell:   "bash",
			Profile: filepath.Join(scene.Home, ".bashrc"),
			BinDir:  t.TempDir(),
		}))
	})

	t.Run("fails on mismatched markers", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)

		profile := scene.WriteProfile(t, ".bashrc",
			shell.BeginMarker+"\nPS1=x\n"+shell.EndMarker+"\n"+shell.BeginMarker+"\n")

		err := doctor.Action(ctx, doctor.Options{
			Shell:   "bash",
			Profile: profile,
			BinDir:  t.TempDir(),
		})
		require.Error(t, err)
	})

	t.Run("fails on a non-executable binary", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		ctx := runtime.NewContext(scene.Home, scene.Dir)

		binDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(binDir, "gitprompt"), []byte("bin"), 0644))

		err := doctor.Action(ctx, doctor.Options{
			Shell:   "bash",
			Profile: filepath.Join(scene.Home, ".bashrc"),
			BinDir:  binDir,
		})
		require.Error(t, err)
	})
}
