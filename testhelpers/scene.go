package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene is a test fixture pairing a temporary git repository with a
// temporary home directory, so install and prompt tests never touch the
// developer's real profile files.
type Scene struct {
	Dir  string
	Home string
	Repo *GitRepo
}

// NewScene creates a scene with an initialized git repository containing one
// commit. Cleanup is registered on t.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	dir := t.TempDir()
	home := t.TempDir()

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("failed to create git repo: %v", err)
	}

	if err := repo.CommitFile("README.md", "# test\n", "initial commit"); err != nil {
		t.Fatalf("failed to create initial commit: %v", err)
	}

	return &Scene{Dir: dir, Home: home, Repo: repo}
}

// NewEmptyScene creates a scene whose repository has no commits yet.
func NewEmptyScene(t *testing.T) *Scene {
	t.Helper()

	dir := t.TempDir()
	home := t.TempDir()

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("failed to create git repo: %v", err)
	}

	return &Scene{Dir: dir, Home: home, Repo: repo}
}

// WriteProfile writes a profile file under the scene's home directory and
// returns its path.
func (s *Scene) WriteProfile(t *testing.T, name string, contents string) string {
	t.Helper()

	path := filepath.Join(s.Home, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create profile dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}
	return path
}

// ReadProfile reads a profile file back for assertions.
func (s *Scene) ReadProfile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read profile: %v", err)
	}
	return string(data)
}
