// Package updater checks for and applies jvmfind releases.
package updater

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"jvmfind/internal/config"

	"github.com/creativeprojects/go-selfupdate"
)

const (
	// GitHubRepo is the repository jvmfind releases are published to.
	GitHubRepo = "jvmfind/jvmfind"

	// CheckInterval is the minimum time between update checks.
	CheckInterval = 24 * time.Hour

	// Timeout bounds a full update operation.
	Timeout = 5 * time.Minute
)

// Updater handles checking for and applying updates.
type Updater struct {
	config         *config.Config
	currentVersion string
	selfUpdater    *selfupdate.Updater
}

// New creates an Updater that validates downloads against the release
// checksum file.
func New(cfg *config.Config, version string) (*Updater, error) {
	su, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{
			UniqueFilename: "SHA256SUMS.txt",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return &Updater{
		config:         cfg,
		currentVersion: strings.TrimPrefix(version, "v"),
		selfUpdater:    su,
	}, nil
}

// ShouldCheck reports whether an update check is due, based on config
// settings and the last check time.
func (u *Updater) ShouldCheck() bool {
	if !u.config.Update.Enabled {
		return false
	}
	return time.Since(u.config.Update.LastCheck) >= CheckInterval
}

// CheckForUpdate queries GitHub for the latest release. It returns nil
// when already up to date or when the user skipped the latest version.
func (u *Updater) CheckForUpdate(ctx context.Context) (*selfupdate.Release, error) {
	latest, found, err := u.selfUpdater.DetectLatest(ctx, selfupdate.ParseSlug(GitHubRepo))
	if err != nil {
		return nil, fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no releases found")
	}

	u.config.Update.LastCheck = time.Now()
	if err := u.config.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
	}

	if latest.LessOrEqual(u.currentVersion) {
		return nil, nil
	}
	if u.config.Update.SkipVersion == latest.Version() {
		return nil, nil
	}

	return latest, nil
}

// PerformUpdate downloads and installs the release, backing up the current
// binary and rolling back on failure.
func (u *Updater) PerformUpdate(ctx context.Context, release *selfupdate.Release) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}

	backup := exe + ".backup"
	if err := copyFile(exe, backup); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		if rollbackErr := os.Rename(backup, exe); rollbackErr != nil {
			return fmt.Errorf("update failed and rollback failed: update error: %w, rollback error: %v", err, rollbackErr)
		}
		return fmt.Errorf("update failed (rolled back): %w", err)
	}

	os.Remove(backup)
	return nil
}

// SkipVersion records that the user does not want this release.
func (u *Updater) SkipVersion(version string) error {
	u.config.Update.SkipVersion = version
	return u.config.Save()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0755)
}
