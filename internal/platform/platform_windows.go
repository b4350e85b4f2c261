//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
	environmentKey    = `System\CurrentControlSet\Control\Session Manager\Environment`
)

// Detect probes the host via the registry: the Windows product name from
// the CurrentVersion key and the CPU architecture from the system
// environment key.
func Detect() (OperatingSystem, error) {
	name, err := readRegistryString(currentVersionKey, "ProductName")
	if err != nil {
		return OperatingSystem{}, fmt.Errorf("%w: cannot read Windows product name: %v", ErrUnavailable, err)
	}

	token, err := readRegistryString(environmentKey, "PROCESSOR_ARCHITECTURE")
	if err != nil {
		return OperatingSystem{}, fmt.Errorf("%w: cannot read processor architecture: %v", ErrUnavailable, err)
	}
	arch, err := NormalizeHostArch(token)
	if err != nil {
		return OperatingSystem{}, err
	}

	return OperatingSystem{Family: Windows, Name: name, Architecture: arch}, nil
}

func readRegistryString(path, name string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue(name)
	if err != nil {
		return "", err
	}
	return value, nil
}
