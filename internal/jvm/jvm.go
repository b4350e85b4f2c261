// Package jvm holds the JVM data model and the version comparison and
// selection logic shared by all platform locators.
package jvm

// Jvm describes one discovered JVM installation. Records are built once
// during a discovery pass and never mutated afterwards.
type Jvm struct {
	Version      Version
	Name         string
	Architecture string
	Path         string
}

// New builds a Jvm record, parsing the raw version string once at
// ingestion.
func New(version, name, architecture, path string) Jvm {
	return Jvm{
		Version:      ParseVersion(version),
		Name:         name,
		Architecture: architecture,
		Path:         path,
	}
}
