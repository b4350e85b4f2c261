package jvm

import (
	"strconv"
	"strings"
)

// Version is a parsed JVM version string. Components are the dot-delimited
// numeric parts; legacy pre-Java-9 strings ("1.8.0_292") keep their leading
// 1 as a component and are flagged so comparisons can strip it when the
// other operand uses the modern form.
type Version struct {
	raw        string
	components []int
	legacy     bool
}

// ParseVersion builds a Version from a raw version string as found in a
// release descriptor. Underscore-delimited patch suffixes ("1.8.0_292")
// count as an additional dot component. Surrounding quotes are stripped.
// An empty or unparseable string yields the empty Version, which sorts
// below every real version.
func ParseVersion(s string) Version {
	raw := strings.Trim(strings.TrimSpace(s), `"`)
	if raw == "" {
		return Version{}
	}

	parts := strings.Split(strings.ReplaceAll(raw, "_", "."), ".")
	components := make([]int, 0, len(parts))
	for _, part := range parts {
		digits := leadingDigits(part)
		if digits == "" {
			break
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			break
		}
		components = append(components, n)
	}

	return Version{
		raw:        raw,
		components: components,
		legacy:     isLegacy(components),
	}
}

// String returns the raw version string the Version was parsed from.
func (v Version) String() string { return v.raw }

// IsEmpty reports whether no numeric components could be parsed.
func (v Version) IsEmpty() bool { return len(v.components) == 0 }

// Granularity is the number of numeric components ("17.0" has 2).
func (v Version) Granularity() int { return len(v.components) }

// alignedAgainst returns v's components with the legacy "1." prefix
// stripped, unless the other operand is legacy too.
func (v Version) alignedAgainst(other Version) []int {
	if v.legacy && !other.legacy {
		return v.components[1:]
	}
	return v.components
}

// TruncateTo reduces v to the query's granularity so a coarse query like
// "17" can be compared against an installed "17.0.2". When v uses the
// legacy 1.x form and the query does not, the prefix is stripped first so
// the component counts line up ("1.8.0" queried as "8" truncates to "8").
func (v Version) TruncateTo(query Version) Version {
	components := v.alignedAgainst(query)
	if len(components) > len(query.components) {
		components = components[:len(query.components)]
	}
	return Version{
		raw:        v.raw,
		components: components,
		legacy:     isLegacy(components),
	}
}

// CompareVersions orders two versions component by component after
// normalizing legacy prefixes. It returns a negative value if a is older
// than b, zero if they are equal, and a positive value otherwise. A
// component missing on one side counts as zero, so "17" == "17.0" and the
// empty Version orders below everything.
func CompareVersions(a, b Version) int {
	ac := a.alignedAgainst(b)
	bc := b.alignedAgainst(a)

	n := len(ac)
	if len(bc) > n {
		n = len(bc)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(ac) {
			av = ac[i]
		}
		if i < len(bc) {
			bv = bc[i]
		}
		if av != bv {
			return av - bv
		}
	}
	return 0
}

// Query is a parsed version filter. A trailing "+" requests "this version
// or newer"; otherwise the installed version, truncated to the query's
// granularity, must match exactly.
type Query struct {
	version Version
	minimum bool
}

// ParseQuery parses a user-supplied version filter such as "17", "1.8" or
// "11.0.2+".
func ParseQuery(s string) Query {
	s = strings.TrimSpace(s)
	minimum := strings.HasSuffix(s, "+")
	return Query{
		version: ParseVersion(strings.TrimSuffix(s, "+")),
		minimum: minimum,
	}
}

// Matches reports whether an installed version satisfies the query.
func (q Query) Matches(v Version) bool {
	if v.IsEmpty() || q.version.IsEmpty() {
		return false
	}
	cmp := CompareVersions(v.TruncateTo(q.version), q.version)
	if q.minimum {
		return cmp >= 0
	}
	return cmp == 0
}

func isLegacy(components []int) bool {
	return len(components) > 1 && components[0] == 1
}

func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
