// Package testhelpers provides fixtures for tests that need real git
// repositories or throwaway profile files.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// GitRepo represents a git repository created for testing purposes.
// All mutations go through the real git binary so the state under test is
// exactly what a user's repository would contain.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// CloneGitRepo clones a local repository, keeping "origin" pointed at the
// source so upstream tracking works in the clone.
func CloneGitRepo(dir string, sourceDir string) (*GitRepo, error) {
	cmd := exec.Command("git", "clone", "--local", sourceDir, dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to clone repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// RunGit executes a git command in the repository directory.
func (r *GitRepo) RunGit(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %v failed: %w", args, err)
	}
	return nil
}

// WriteFile writes content to a file inside the repository.
func (r *GitRepo) WriteFile(name string, content string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Stage adds paths to the index.
func (r *GitRepo) Stage(paths ...string) error {
	return r.RunGit(append([]string{"add"}, paths...)...)
}

// Commit records a commit with the given message, committing staged changes only.
func (r *GitRepo) Commit(message string) error {
	return r.RunGit("commit", "-m", message, "--no-gpg-sign")
}

// CommitFile writes, stages, and commits a single file.
func (r *GitRepo) CommitFile(name string, content string, message string) error {
	if err := r.WriteFile(name, content); err != nil {
		return err
	}
	if err := r.Stage(name); err != nil {
		return err
	}
	return r.Commit(message)
}

// DeleteFile removes a file from the working tree.
func (r *GitRepo) DeleteFile(name string) error {
	return os.Remove(filepath.Join(r.Dir, name))
}

// CheckoutDetached detaches HEAD at the current commit.
func (r *GitRepo) CheckoutDetached() error {
	return r.RunGit("checkout", "--detach")
}

// HeadSHA returns the full sha of the current HEAD commit.
func (r *GitRepo) HeadSHA() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return string(out[:len(out)-1]), nil
}
