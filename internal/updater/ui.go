package updater

import (
	"fmt"
	"strings"

	"jvmfind/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/creativeprojects/go-selfupdate"
)

// PromptForUpdate asks the user what to do with an available release.
// Returns "update", "skip", or "later".
func (u *Updater) PromptForUpdate(release *selfupdate.Release) (string, error) {
	sizeMB := float64(release.AssetByteSize) / 1024 / 1024
	description := fmt.Sprintf(
		"Download size: %.1f MB\n\n%s",
		sizeMB,
		truncateChangelog(release.ReleaseNotes, 400),
	)

	var action string
	err := huh.NewSelect[string]().
		Title(theme.Subtitle.Render(fmt.Sprintf("Update available: %s → %s", u.currentVersion, release.Version()))).
		Description(theme.Faint.Render(description)).
		Options(
			huh.NewOption(theme.SuccessStyle.Render("Update now"), "update"),
			huh.NewOption(theme.InfoStyle.Render("Skip this version"), "skip"),
			huh.NewOption(theme.WarningStyle.Render("Remind me later"), "later"),
		).
		Value(&action).
		Run()
	if err != nil {
		return "", err
	}

	if action == "skip" {
		if err := u.SkipVersion(release.Version()); err != nil {
			fmt.Printf("Warning: failed to save skip preference: %v\n", err)
		}
	}

	return action, nil
}

// UpdateNotification formats the one-line hint shown when a background
// check finds a newer release.
func UpdateNotification(currentVersion, latestVersion string) string {
	return fmt.Sprintf("%s Update available: %s → %s %s",
		theme.InfoStyle.Render("ℹ"),
		theme.Faint.Render(currentVersion),
		theme.VersionStyle.Render(latestVersion),
		theme.Faint.Render("(run 'jvmfind update')"))
}

// ShowAlreadyUpToDate prints the message for the no-update case.
func ShowAlreadyUpToDate(version string) {
	fmt.Println(theme.SuccessMessage(fmt.Sprintf("You're already running the latest version (%s)", version)))
}

// ShowCheckingForUpdates prints the progress message for the check phase.
func ShowCheckingForUpdates() {
	fmt.Println(theme.InfoStyle.Render("Checking for updates..."))
}

// ShowDownloadingUpdate prints the progress message for the download phase.
func ShowDownloadingUpdate(version string) {
	fmt.Println(theme.InfoStyle.Render(fmt.Sprintf("Downloading jvmfind %s...", version)))
}

// ShowUpdateSuccess prints the completion message.
func ShowUpdateSuccess(version string) {
	fmt.Println(theme.SuccessMessage(fmt.Sprintf("Updated to version %s", version)))
	fmt.Println(theme.Faint.Render("Note: Run jvmfind again to use the new version."))
}

// truncateChangelog bounds the changelog shown in the prompt, breaking at
// a newline or space where possible.
func truncateChangelog(changelog string, maxLen int) string {
	changelog = strings.TrimSpace(changelog)
	if changelog == "" {
		return "See release notes on GitHub for details."
	}
	if len(changelog) <= maxLen {
		return changelog
	}

	truncated := changelog[:maxLen]
	if idx := strings.LastIndex(truncated, "\n"); idx > maxLen/2 {
		truncated = truncated[:idx]
	} else if idx := strings.LastIndex(truncated, " "); idx > maxLen/2 {
		truncated = truncated[:idx]
	}
	return truncated + "..."
}
