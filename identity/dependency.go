package identity

import (
	"sort"
	"strings"

	"github.com/depindex/resolver/version"
)

// AnyFramework is the FrameworkTag value used when a dependency group does
// not target a specific platform profile.
const AnyFramework = ""

// FrameworkTag is an opaque token naming a target platform profile.
// Equality is structural (plain string comparison); the resolver never
// interprets the token beyond grouping.
type FrameworkTag = string

// PackageDependency is one direct dependency edge. A nil Range means any
// version satisfies it.
type PackageDependency struct {
	ID    string
	Range *version.Range
}

// Equals compares two dependencies structurally, including a nil-range match.
func (d PackageDependency) Equals(other PackageDependency) bool {
	if !strings.EqualFold(d.ID, other.ID) {
		return false
	}
	if d.Range == nil || other.Range == nil {
		return d.Range == other.Range
	}
	return d.Range.String() == other.Range.String()
}

// PackageDependencyGroup scopes a set of dependencies to one target
// framework (or AnyFramework).
type PackageDependencyGroup struct {
	Framework FrameworkTag
	Deps      []PackageDependency
}

// DependencyInfo is the uniform result of resolving one package release:
// its identity plus every declared dependency group. Values are immutable
// after construction.
type DependencyInfo struct {
	Identity PackageIdentity
	Groups   []PackageDependencyGroup
}

// Equals compares two DependencyInfo values: identity must be equal and the
// group sets must match as unordered sets.
func (d DependencyInfo) Equals(other DependencyInfo) bool {
	if !d.Identity.Equals(other.Identity) {
		return false
	}
	return groupSetEquals(d.Groups, other.Groups)
}

func groupSetEquals(a, b []PackageDependencyGroup) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ga := range a {
		matched := false
		for i, gb := range b {
			if used[i] {
				continue
			}
			if groupEquals(ga, gb) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func groupEquals(a, b PackageDependencyGroup) bool {
	if a.Framework != b.Framework {
		return false
	}
	if len(a.Deps) != len(b.Deps) {
		return false
	}
	ad := sortedDeps(a.Deps)
	bd := sortedDeps(b.Deps)
	for i := range ad {
		if !ad[i].Equals(bd[i]) {
			return false
		}
	}
	return true
}

func sortedDeps(deps []PackageDependency) []PackageDependency {
	out := make([]PackageDependency, len(deps))
	copy(out, deps)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].ID) < strings.ToLower(out[j].ID)
	})
	return out
}
