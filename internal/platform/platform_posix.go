//go:build darwin || linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Detect probes the host via uname and, on Linux, /etc/os-release.
func Detect() (OperatingSystem, error) {
	kernel, err := uname("-s")
	if err != nil {
		return OperatingSystem{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	machine, err := uname("-m")
	if err != nil {
		return OperatingSystem{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	arch, err := NormalizeHostArch(machine)
	if err != nil {
		return OperatingSystem{}, err
	}

	switch kernel {
	case "Darwin":
		return OperatingSystem{Family: Darwin, Name: "macOS", Architecture: arch}, nil
	case "Linux":
		id, err := linuxDistributionID()
		if err != nil {
			return OperatingSystem{}, err
		}
		return OperatingSystem{Family: Linux, Name: id, Architecture: arch}, nil
	}
	return OperatingSystem{}, fmt.Errorf("%w: unknown kernel %q", ErrUnavailable, kernel)
}

func uname(flag string) (string, error) {
	out, err := exec.Command("uname", flag).Output()
	if err != nil {
		return "", fmt.Errorf("uname %s: %v", flag, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func linuxDistributionID() (string, error) {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "", fmt.Errorf("%w: cannot read /etc/os-release: %v", ErrUnavailable, err)
	}
	id := osReleaseID(string(data))
	if id == "" {
		return "", fmt.Errorf("%w: /etc/os-release has no ID field", ErrUnavailable)
	}
	return id, nil
}
