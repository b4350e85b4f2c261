package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"jvmfind/internal/config"
	"jvmfind/internal/jvm"
	"jvmfind/internal/locator"
	"jvmfind/internal/platform"
	"jvmfind/internal/theme"
	"jvmfind/internal/ui"
	"jvmfind/internal/updater"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

// Version is set during build time via ldflags
var Version = "dev"

// Exit codes, BSD sysexits convention: EX_UNAVAILABLE for hosts the tool
// cannot inspect, EX_CONFIG for --fail with no matching JVM.
const (
	exitOK          = 0
	exitUnavailable = 69
	exitConfig      = 78
)

func main() {
	args := os.Args[1:]
	command := commandFor(args)

	notify := startUpdateCheck(command)

	switch command {
	case "find":
		if len(args) > 0 && args[0] == "find" {
			handleFind(args[1:])
		} else {
			handleFind(args)
		}
	case "select":
		handleSelect()
	case "add-path":
		handleAddPath()
	case "remove-path":
		handleRemovePath()
	case "list-paths":
		handleListPaths()
	case "update":
		handleUpdate()
	case "version":
		printVersion()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	// Background update check (non-blocking, silent)
	select {
	case msg, ok := <-notify:
		if ok {
			fmt.Fprintln(os.Stderr, msg)
		}
	default:
	}
}

// commandFor maps the raw arguments to a command verb. Bare flags run
// the finder (`jvmfind -v 17 -a x86_64`), except the help and version
// long flags, which belong to the top-level command; -v stays with find
// as its version filter.
func commandFor(args []string) string {
	if len(args) == 0 {
		return "find"
	}
	switch args[0] {
	case "help", "-h", "--help":
		return "help"
	case "version", "--version":
		return "version"
	}
	if strings.HasPrefix(args[0], "-") {
		return "find"
	}
	return args[0]
}

// startUpdateCheck launches a silent update check for interactive
// commands. The returned channel yields at most one notification line,
// printed to stderr only if the check finishes before the command does.
// find is excluded so scripted $(jvmfind ...) calls stay quiet, and
// update performs its own explicit check.
func startUpdateCheck(command string) <-chan string {
	notify := make(chan string, 1)
	if command == "find" || command == "update" {
		close(notify)
		return notify
	}

	go func() {
		defer close(notify)
		defer func() {
			recover()
		}()

		cfg, err := config.Load()
		if err != nil {
			return
		}

		upd, err := updater.New(cfg, Version)
		if err != nil {
			return
		}

		if !upd.ShouldCheck() {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		release, err := upd.CheckForUpdate(ctx)
		if err != nil || release == nil {
			return
		}

		notify <- updater.UpdateNotification(Version, release.Version())
	}()

	return notify
}

func handleFind(args []string) {
	fs := pflag.NewFlagSet("find", pflag.ContinueOnError)
	fs.SortFlags = false
	name := fs.StringP("name", "n", "", "JVM name to filter on")
	arch := fs.StringP("arch", "a", "", "Architecture to filter on (e.g. x86_64, aarch64, amd64)")
	version := fs.StringP("version", "v", "", "Version to filter on (e.g. 1.8, 11, 17, 17.0.2+)")
	detailed := fs.BoolP("detailed", "d", false, "Print one line per matching JVM with full details")
	fail := fs.BoolP("fail", "f", false, "Return an error code if no JVM is found")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(exitOK)
		}
		os.Exit(1)
	}

	host := detectHost()
	jvms, err := locator.Locate(host, loadSearchPaths())
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
		os.Exit(exitUnavailable)
	}

	selected := jvm.Select(jvms, jvm.Filters{
		Name:         *name,
		Architecture: platform.CanonicalArch(*arch),
		Version:      *version,
	}, host.Architecture)

	if len(selected) == 0 {
		if *fail {
			fmt.Fprintln(os.Stderr, "Couldn't find a JVM to use.")
			os.Exit(exitConfig)
		}
		os.Exit(exitOK)
	}

	if *detailed {
		for _, found := range selected {
			fmt.Printf("%s (%s) %q - %s\n", found.Version.String(), found.Architecture, found.Name, found.Path)
		}
		return
	}
	fmt.Println(selected[0].Path)
}

func handleSelect() {
	host := detectHost()
	paths := loadSearchPaths()

	var jvms []jvm.Jvm
	var scanErr error
	if err := ui.WithScanner(func() {
		jvms, scanErr = locator.Locate(host, paths)
	}); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
		os.Exit(1)
	}
	if scanErr != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(scanErr.Error()))
		os.Exit(exitUnavailable)
	}

	ordered := jvm.Select(jvms, jvm.Filters{}, host.Architecture)
	if len(ordered) == 0 {
		fmt.Println(theme.WarningStyle.Render("No JVM installations found."))
		fmt.Println(theme.Faint.Render("Use 'jvmfind add-path <directory>' to register extra search paths."))
		os.Exit(1)
	}

	options := make([]huh.Option[int], len(ordered))
	for i, found := range ordered {
		versionPart := theme.VersionStyle.Render(found.Version.String())
		pad := ""
		if w := lipgloss.Width(versionPart); w < 15 {
			pad = strings.Repeat(" ", 15-w)
		}
		archTag := theme.Faint.Render("(" + found.Architecture + ")")
		options[i] = huh.NewOption(fmt.Sprintf("%s%s %s %s", versionPart, pad, found.Path, archTag), i)
	}

	var selectedIdx int
	err := huh.NewSelect[int]().
		Title(theme.Subtitle.Render("Select JVM")).
		Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
		Options(options...).
		Value(&selectedIdx).
		Run()
	if err != nil {
		fmt.Println(theme.WarningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
		os.Exit(1)
	}

	fmt.Println(ordered[selectedIdx].Path)
}

func handleAddPath() {
	if len(os.Args) < 3 {
		fmt.Println(theme.ErrorStyle.Render("Usage: jvmfind add-path <directory>"))
		fmt.Println(theme.InfoStyle.Render("Example: jvmfind add-path /opt/java"))
		os.Exit(1)
	}

	path := os.Args[2]
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		fmt.Printf("Invalid directory path: %s\n", path)
		fmt.Println("Make sure the path exists and is a directory.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	if cfg.HasSearchPath(path) {
		fmt.Println(theme.WarningStyle.Render("This search path is already configured."))
		return
	}

	confirmed, err := confirmAction(
		"Add search path?",
		fmt.Sprintf("Path: %s\n\nThis directory will be scanned for JVM installations.", path),
	)
	if err != nil || !confirmed {
		fmt.Println("Operation cancelled.")
		return
	}

	cfg.AddSearchPath(path)
	if err := cfg.Save(); err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error saving config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(theme.SuccessMessage("Added search path:"))
	fmt.Println("  " + theme.PathStyle.Render(path))
}

func handleRemovePath() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	var pathToRemove string

	// Interactive mode if no path specified
	if len(os.Args) < 3 {
		if len(cfg.SearchPaths) == 0 {
			fmt.Println(theme.InfoMessage("No custom search paths to remove"))
			fmt.Println("  " + theme.Faint.Render("Use ") + theme.Code.Render("jvmfind add-path <directory>") + theme.Faint.Render(" to add one"))
			return
		}

		maxW := 0
		for _, p := range cfg.SearchPaths {
			if w := lipgloss.Width(p); w > maxW {
				maxW = w
			}
		}

		options := make([]huh.Option[string], len(cfg.SearchPaths))
		for i, p := range cfg.SearchPaths {
			pad := ""
			if w := lipgloss.Width(p); w < maxW {
				pad = strings.Repeat(" ", maxW-w)
			}
			status := theme.Faint.Render("Not found")
			if info, err := os.Stat(p); err == nil && info.IsDir() {
				status = theme.SuccessStyle.Render("✓ Exists")
			}
			options[i] = huh.NewOption(fmt.Sprintf("%s%s  %s", p, pad, status), p)
		}

		err := huh.NewSelect[string]().
			Title(theme.Subtitle.Render("Select Search Path to Remove")).
			Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
			Options(options...).
			Value(&pathToRemove).
			Run()
		if err != nil {
			fmt.Println(theme.WarningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
			os.Exit(1)
		}
	} else {
		pathToRemove = os.Args[2]
	}

	if !cfg.HasSearchPath(pathToRemove) {
		fmt.Println(theme.WarningStyle.Render("This path is not in the search paths list."))
		return
	}

	confirmed, err := confirmAction("Remove search path?", fmt.Sprintf("Path: %s", pathToRemove))
	if err != nil || !confirmed {
		fmt.Println(theme.WarningStyle.Render("Operation cancelled."))
		return
	}

	cfg.RemoveSearchPath(pathToRemove)
	if err := cfg.Save(); err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error saving config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(theme.SuccessMessage("Removed search path."))
}

func handleListPaths() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	host := detectHost()

	fmt.Println(theme.Title.Render("JVM Search Paths"))
	fmt.Println()

	fmt.Println(theme.LabelStyle.Render("Default path (built-in):"))
	if root, ok := locator.DefaultRoot(host); ok {
		fmt.Println("  " + theme.PathStyle.Render(root))
	} else if host.Family == platform.Windows {
		fmt.Println("  " + theme.Faint.Render("(registry-based discovery)"))
	} else {
		fmt.Println("  " + theme.Faint.Render("(none for this host)"))
	}
	fmt.Println()

	if len(cfg.SearchPaths) == 0 {
		fmt.Println(theme.InfoStyle.Render("No custom search paths configured."))
		fmt.Println(theme.Faint.Render("Use 'jvmfind add-path <directory>' to add one."))
		return
	}

	fmt.Println(theme.LabelStyle.Render("Custom search paths:"))
	fmt.Println()

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Left,
		theme.TableHeader.Width(58).Render("Path"),
		theme.TableHeader.Render("Status"),
	)}
	for _, p := range cfg.SearchPaths {
		status := theme.ErrorStyle.Padding(0, 1).Render("✗ Not found")
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			status = theme.SuccessStyle.Padding(0, 1).Render("✓ Exists")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left,
			theme.TableCell.Width(58).Render(p),
			status,
		))
	}

	fmt.Println(theme.TableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func handleUpdate() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error loading config: " + err.Error()))
		os.Exit(1)
	}

	if !cfg.Update.Enabled {
		fmt.Println(theme.WarningStyle.Render("Updates are disabled in configuration."))
		return
	}

	upd, err := updater.New(cfg, Version)
	if err != nil {
		fmt.Println(theme.ErrorStyle.Render("Error initializing updater: " + err.Error()))
		os.Exit(1)
	}

	updater.ShowCheckingForUpdates()

	ctx, cancel := context.WithTimeout(context.Background(), updater.Timeout)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil {
		fmt.Println(theme.ErrorStyle.Render("Update check failed: " + err.Error()))
		os.Exit(1)
	}
	if release == nil {
		updater.ShowAlreadyUpToDate(Version)
		return
	}

	action, err := upd.PromptForUpdate(release)
	if err != nil {
		fmt.Println(theme.WarningStyle.Render("Update cancelled."))
		return
	}
	if action != "update" {
		if action == "skip" {
			fmt.Println(theme.InfoMessage(fmt.Sprintf("Skipped version %s", release.Version())))
		} else {
			fmt.Println(theme.InfoMessage("Update postponed"))
		}
		return
	}

	updater.ShowDownloadingUpdate(release.Version())

	if err := upd.PerformUpdate(ctx, release); err != nil {
		fmt.Println(theme.ErrorStyle.Render("Update failed: " + err.Error()))
		os.Exit(1)
	}

	updater.ShowUpdateSuccess(release.Version())
}

// detectHost probes the platform once, exiting with the unavailable status
// when the host cannot be identified.
func detectHost() platform.OperatingSystem {
	host, err := platform.Detect()
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
		os.Exit(exitUnavailable)
	}
	return host
}

// loadSearchPaths returns the configured extra search roots. Config
// problems are reported but never block discovery.
func loadSearchPaths() []string {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.WarningMessage("Ignoring unreadable config: "+err.Error()))
		return nil
	}
	return cfg.SearchPaths
}

// confirmAction shows a confirmation prompt
func confirmAction(title, description string) (bool, error) {
	var confirmed bool

	err := huh.NewConfirm().
		Title(theme.Subtitle.Render(title)).
		Description(theme.Faint.Render(description)).
		Affirmative(theme.SuccessStyle.Render("Yes")).
		Negative(theme.ErrorStyle.Render("No")).
		Value(&confirmed).
		Run()

	return confirmed, err
}

func printVersion() {
	fmt.Printf("%s %s %s\n",
		theme.Subtitle.Render("jvmfind"),
		theme.Faint.Render("version"),
		theme.Code.Render(Version))
}

func printUsage() {
	fmt.Println(theme.Subtitle.Render("jvmfind"))
	fmt.Println(theme.Faint.Render("Find installed JVMs and pick the right one"))
	fmt.Println()

	fmt.Println(theme.Title.Render("USAGE"))
	fmt.Println(theme.Faint.Render("  jvmfind [command] [flags]"))
	fmt.Println()

	commandStyle := theme.Code
	descStyle := theme.Faint

	fmt.Println(theme.Subtitle.Render("COMMANDS"))
	fmt.Printf("  %s               %s\n", commandStyle.Render("find"), descStyle.Render("Find JVMs matching the filters (default command)"))
	fmt.Printf("  %s             %s\n", commandStyle.Render("select"), descStyle.Render("Interactively pick a JVM and print its path"))
	fmt.Printf("  %s <dir>     %s\n", commandStyle.Render("add-path"), descStyle.Render("Add a directory to scan for JVM installations"))
	fmt.Printf("  %s [dir]  %s\n", commandStyle.Render("remove-path"), descStyle.Render("Remove a directory from the search paths"))
	fmt.Printf("  %s         %s\n", commandStyle.Render("list-paths"), descStyle.Render("Show all search paths (default + custom)"))
	fmt.Printf("  %s             %s\n", commandStyle.Render("update"), descStyle.Render("Check for and install updates"))
	fmt.Printf("  %s            %s\n", commandStyle.Render("version"), descStyle.Render("Show version information"))
	fmt.Println()

	fmt.Println(theme.Subtitle.Render("FIND FLAGS"))
	fmt.Printf("  %s       %s\n", commandStyle.Render("-n, --name"), descStyle.Render("JVM name to filter on (exact match)"))
	fmt.Printf("  %s       %s\n", commandStyle.Render("-a, --arch"), descStyle.Render("Architecture to filter on (e.g. x86_64, aarch64)"))
	fmt.Printf("  %s    %s\n", commandStyle.Render("-v, --version"), descStyle.Render("Version to filter on (17, 1.8, 11.0.2+, ...)"))
	fmt.Printf("  %s   %s\n", commandStyle.Render("-d, --detailed"), descStyle.Render("Print full details for every match"))
	fmt.Printf("  %s       %s\n", commandStyle.Render("-f, --fail"), descStyle.Render("Exit with an error code when nothing matches"))
	fmt.Println()

	fmt.Println(theme.Title.Render("EXAMPLES"))
	fmt.Println("  " + theme.Code.Render("jvmfind") + "                    # Path of the best JVM")
	fmt.Println("  " + theme.Code.Render("jvmfind -v 17") + "              # Best Java 17 installation")
	fmt.Println("  " + theme.Code.Render("jvmfind -v 11+ -a aarch64") + "  # Java 11 or newer, arm builds only")
	fmt.Println("  " + theme.Code.Render("jvmfind find -d") + "            # Detailed listing of every JVM")
	fmt.Println("  " + theme.Code.Render("export JAVA_HOME=$(jvmfind -v 17 -f)"))
}
