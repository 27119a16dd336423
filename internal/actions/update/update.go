// Package update checks GitHub releases for a newer gitprompt and replaces
// the installed binary in place.
package update

import (
	"context"
	"fmt"
	"os"

	"gitprompt.dev/gitprompt/internal/runtime"
)

// Options contains options for the update command
type Options struct {
	CurrentVersion string // version baked into the running binary
	Tag            string // explicit release tag; empty means latest
	Check          bool   // only report, do not install
	Force          bool   // update even from a dev build
}

// Action checks for a newer release and installs it over the running binary
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	if opts.CurrentVersion == "dev" && !opts.Force {
		return fmt.Errorf("refusing to update a dev build (use --force to override)")
	}

	reqCtx := context.Background()
	client := newGitHubClient(reqCtx)

	release, err := fetchRelease(reqCtx, client, opts.Tag)
	if err != nil {
		return err
	}

	newer, err := isNewer(opts.CurrentVersion, release.GetTagName())
	if err != nil {
		return err
	}
	if !newer && opts.Tag == "" {
		splog.Info("Already up to date (%s)", opts.CurrentVersion)
		return nil
	}

	if opts.Check {
		splog.Info("Update available: %s → %s", opts.CurrentVersion, release.GetTagName())
		return nil
	}

	asset, err := selectAsset(release)
	if err != nil {
		return err
	}

	splog.Info("Downloading %s %s...", asset.GetName(), release.GetTagName())
	downloaded, err := downloadAsset(reqCtx, asset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	defer os.Remove(downloaded)

	currentPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate running executable: %w", err)
	}

	if err := replaceBinary(downloaded, currentPath); err != nil {
		return err
	}

	splog.Info("Updated gitprompt to %s", release.GetTagName())
	return nil
}
