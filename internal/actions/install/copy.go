package install

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/tui"
)

// copyBinary places the artifact at dest. A permission error on the direct
// write triggers a sudo retry, confirmed with the user unless yes is set.
func copyBinary(splog *tui.Splog, src string, dest string, yes bool) error {
	err := copyFile(src, dest)
	if err == nil {
		return nil
	}
	if !os.IsPermission(err) {
		return gperrors.NewCopyError(src, dest, err)
	}

	splog.Warn("Writing to %s requires elevated privileges", filepath.Dir(dest))

	if !yes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Retry copying to %s with sudo?", dest),
			Default: true,
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			return gperrors.NewCopyError(src, dest, fmt.Errorf("copy canceled"))
		}
	}

	if out, err := exec.Command("sudo", "cp", src, dest).CombinedOutput(); err != nil {
		return gperrors.NewCopyError(src, dest, fmt.Errorf("sudo cp: %v: %s", err, out))
	}
	if out, err := exec.Command("sudo", "chmod", "0755", dest).CombinedOutput(); err != nil {
		return gperrors.NewCopyError(src, dest, fmt.Errorf("sudo chmod: %v: %s", err, out))
	}
	return nil
}

// copyFile copies src to dest via a temp file in the destination directory,
// so a half-written binary never lands at the final path.
func copyFile(src string, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".gitprompt-install-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0755); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}
