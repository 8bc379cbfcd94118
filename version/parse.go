package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a version string into a Version.
//
// Accepts 2, 3, or 4 numeric leading components; a 4th component marks the
// value as a legacy version. A "-" introduces prerelease labels, a trailing
// "+" introduces build metadata (ignored for comparison).
func Parse(s string) (*Version, error) {
	original := s
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("version cannot be empty")
	}

	var metadata string
	if idx := strings.IndexByte(s, '+'); idx >= 0 {
		metadata = s[idx+1:]
		s = s[:idx]
	}

	var releaseLabels []string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		releasePart := s[idx+1:]
		s = s[:idx]
		if releasePart == "" {
			return nil, fmt.Errorf("invalid version %q: empty prerelease label", original)
		}
		releaseLabels = strings.Split(releasePart, ".")
	}

	numericParts := strings.Split(s, ".")
	if len(numericParts) < 2 || len(numericParts) > 4 {
		return nil, fmt.Errorf("invalid version %q: expected 2 to 4 numeric components", original)
	}

	nums := make([]int, 4)
	for i, part := range numericParts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version %q: component %q is not a non-negative integer", original, part)
		}
		nums[i] = n
	}

	v := &Version{
		Major:           nums[0],
		Minor:           nums[1],
		Patch:           nums[2],
		Revision:        nums[3],
		IsLegacyVersion: len(numericParts) == 4,
		ReleaseLabels:   releaseLabels,
		Metadata:        metadata,
		originalString:  original,
	}

	return v, nil
}

// MustParse parses a version string, panicking on error.
// Use this only when the version string is known to be valid (e.g. in tests).
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
