// Package errors provides sentinel errors and custom error types for the gitprompt application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrUnbornHead indicates that HEAD does not point at a commit yet
	ErrUnbornHead = errors.New("repository has no commits")

	// ErrBuildFailed indicates that the release build step exited non-zero
	ErrBuildFailed = errors.New("build failed")

	// ErrCopyFailed indicates that the binary could not be placed in the install directory
	ErrCopyFailed = errors.New("copy failed")

	// ErrUnsupportedShell indicates that the user's shell is not one we can configure
	ErrUnsupportedShell = errors.New("unsupported shell")
)

// BuildError represents a failed release build, carrying the toolchain output
type BuildError struct {
	Command string
	Output  string
	Err     error
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("build failed: %s", e.Command)
	if e.Output != "" {
		msg += fmt.Sprintf("\n%s", e.Output)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBuildFailed
func (e *BuildError) Is(target error) bool {
	return target == ErrBuildFailed
}

// NewBuildError creates a new BuildError
func NewBuildError(command string, output string, err error) *BuildError {
	return &BuildError{Command: command, Output: output, Err: err}
}

// CopyError represents a failed binary install copy
type CopyError struct {
	Source      string
	Destination string
	Err         error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCopyFailed
func (e *CopyError) Is(target error) bool {
	return target == ErrCopyFailed
}

// NewCopyError creates a new CopyError
func NewCopyError(source, destination string, err error) *CopyError {
	return &CopyError{Source: source, Destination: destination, Err: err}
}

// UnsupportedShellError names the shell that could not be configured
type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("unsupported shell %q (supported: bash, zsh, fish)", e.Shell)
}

// Is returns true if the target error is ErrUnsupportedShell
func (e *UnsupportedShellError) Is(target error) bool {
	return target == ErrUnsupportedShell
}

// NewUnsupportedShellError creates a new UnsupportedShellError
func NewUnsupportedShellError(shell string) *UnsupportedShellError {
	return &UnsupportedShellError{Shell: shell}
}
