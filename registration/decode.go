package registration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/depindex/resolver/identity"
	"github.com/depindex/resolver/resolveerr"
	"github.com/depindex/resolver/version"
)

// unlistedSentinel is the normalized YYYYMMDD form of the "unlisted"
// publish date (1900-01-01).
const unlistedSentinel = "19000101"

// DecodeEntry converts one catalog entry into a DependencyInfo, applying
// unlisted filtering (I2) and range membership (I1). A nil, nil result
// means the entry was filtered out (unlisted or out of range), not an error.
func DecodeEntry(entry *CatalogEntry, requested *version.Range) (*identity.DependencyInfo, error) {
	v, err := version.Parse(entry.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog entry version %q: %v", resolveerr.ErrBadDocument, entry.Version, err)
	}

	if isUnlisted(entry.Published) {
		return nil, nil
	}

	if !requested.Satisfies(v) {
		return nil, nil
	}

	groups := make([]identity.PackageDependencyGroup, 0, len(entry.DependencyGroups))
	for _, wireGroup := range entry.DependencyGroups {
		framework := identity.NormalizeFrameworkTag(wireGroup.TargetFramework)

		deps := make([]identity.PackageDependency, 0, len(wireGroup.Dependencies))
		for _, wireDep := range wireGroup.Dependencies {
			if wireDep.ID == "" {
				return nil, fmt.Errorf("%w: dependency group %q has a dependency with no id", resolveerr.ErrBadDocument, framework)
			}

			var rng *version.Range
			if wireDep.Range != "" {
				parsed, err := version.ParseVersionRange(wireDep.Range)
				if err != nil {
					return nil, fmt.Errorf("%w: dependency %q range %q: %v", resolveerr.ErrBadDocument, wireDep.ID, wireDep.Range, err)
				}
				rng = parsed.WithPre(requested.IncludePre)
			}

			deps = append(deps, identity.PackageDependency{ID: wireDep.ID, Range: rng})
		}

		groups = append(groups, identity.PackageDependencyGroup{Framework: framework, Deps: deps})
	}

	return &identity.DependencyInfo{
		Identity: identity.New(entry.ID, v),
		Groups:   groups,
	}, nil
}

// isUnlisted reports whether published normalizes to the 1900-01-01 sentinel.
func isUnlisted(published string) bool {
	if published == "" {
		return false
	}
	digits := strings.Builder{}
	for _, r := range published {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() >= 8 {
			break
		}
	}
	normalized := digits.String()
	if len(normalized) < 8 {
		return false
	}
	if _, err := strconv.Atoi(normalized[:8]); err != nil {
		return false
	}
	return normalized[:8] == unlistedSentinel
}
