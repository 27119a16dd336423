package update

import (
	"context"
	"fmt"
	"os"
	goruntime "runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	releaseOwner = "gitprompt-dev"
	releaseRepo  = "gitprompt"
)

// newGitHubClient creates a client, authenticated when GITHUB_TOKEN is set.
// Anonymous access works for public releases, just with lower rate limits.
func newGitHubClient(ctx context.Context) *github.Client {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return github.NewClient(nil)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc)
}

// fetchRelease returns the latest release, or the release for an explicit tag
func fetchRelease(ctx context.Context, client *github.Client, tag string) (*github.RepositoryRelease, error) {
	if tag != "" {
		release, _, err := client.Repositories.GetReleaseByTag(ctx, releaseOwner, releaseRepo, tag)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch release %s: %w", tag, err)
		}
		return release, nil
	}

	release, _, err := client.Repositories.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	return release, nil
}

// isNewer reports whether the release tag is a higher version than current.
// Dev builds compare as older than everything.
func isNewer(currentVersion string, releaseTag string) (bool, error) {
	if currentVersion == "dev" {
		return true, nil
	}

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse current version %q: %w", currentVersion, err)
	}
	release, err := semver.NewVersion(releaseTag)
	if err != nil {
		return false, fmt.Errorf("failed to parse release tag %q: %w", releaseTag, err)
	}

	return release.GreaterThan(current), nil
}

// assetName is the release artifact name for this platform
func assetName() string {
	return fmt.Sprintf("gitprompt_%s_%s", goruntime.GOOS, goruntime.GOARCH)
}

// selectAsset finds the asset matching this platform in a release
func selectAsset(release *github.RepositoryRelease) (*github.ReleaseAsset, error) {
	want := assetName()
	for _, asset := range release.Assets {
		if asset.GetName() == want {
			return asset, nil
		}
	}
	return nil, fmt.Errorf("release %s has no asset %s", release.GetTagName(), want)
}
