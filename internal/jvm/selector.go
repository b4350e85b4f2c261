package jvm

import "sort"

// Filters narrows the discovered JVM set. Empty fields always pass. Name
// and Architecture are case-sensitive exact matches against the stored
// values; Version follows Query semantics.
type Filters struct {
	Name         string
	Architecture string
	Version      string
}

// Select applies the filters and orders the survivors best-first: newest
// version first, and among version-equal candidates the one whose
// architecture matches the host's native architecture. The tie-break never
// overrides a genuine version difference. An empty result is a valid
// outcome.
func Select(jvms []Jvm, filters Filters, nativeArch string) []Jvm {
	var query *Query
	if filters.Version != "" {
		q := ParseQuery(filters.Version)
		query = &q
	}

	selected := make([]Jvm, 0, len(jvms))
	for _, candidate := range jvms {
		if filters.Name != "" && candidate.Name != filters.Name {
			continue
		}
		if filters.Architecture != "" && candidate.Architecture != filters.Architecture {
			continue
		}
		if query != nil && !query.Matches(candidate.Version) {
			continue
		}
		selected = append(selected, candidate)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		cmp := CompareVersions(selected[i].Version, selected[j].Version)
		if cmp != 0 {
			return cmp > 0
		}
		return selected[i].Architecture == nativeArch && selected[j].Architecture != nativeArch
	})

	return selected
}
