package version

import (
	"strconv"
	"strings"
)

// Compare returns -1, 0, or 1 if v is less than, equal to, or greater than other.
//
// Comparison follows SemVer 2.0 precedence: major/minor/patch numeric compare,
// then prerelease labels (a version without prerelease labels is greater than
// one with), then label-by-label comparison (numeric identifiers compare
// numerically and sort before non-numeric identifiers; non-numeric identifiers
// compare case-insensitively). Build metadata never participates. Revision is
// only compared when both operands are legacy 4-part versions.
func (v *Version) Compare(other *Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	if v.IsLegacyVersion && other.IsLegacyVersion {
		if c := compareInt(v.Revision, other.Revision); c != 0 {
			return c
		}
	}
	return comparePrerelease(v.ReleaseLabels, other.ReleaseLabels)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease compares two release-label sequences per SemVer precedence.
func comparePrerelease(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	// A version with no prerelease labels is a release, and sorts higher.
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if c := compareLabel(a[i], b[i]); c != 0 {
			return c
		}
	}

	return compareInt(len(a), len(b))
}

// compareLabel compares a single pair of dot-separated prerelease identifiers.
func compareLabel(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		return compareInt(an, bn)
	case aErr == nil:
		// numeric identifiers always sort before alphanumeric ones
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// Equals reports whether v and other compare equal (build metadata ignored).
func (v *Version) Equals(other *Version) bool {
	return v.Compare(other) == 0
}

// LessThan reports whether v sorts before other.
func (v *Version) LessThan(other *Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan reports whether v sorts after other.
func (v *Version) GreaterThan(other *Version) bool {
	return v.Compare(other) > 0
}

// ToNormalizedString returns the canonical formatted form, discarding any
// original textual representation (leading zeros, stray whitespace, etc).
func (v *Version) ToNormalizedString() string {
	return v.format()
}
