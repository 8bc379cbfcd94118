// Package identity holds the value types shared by both metadata protocols:
// package identity, dependency descriptors, and the per-framework grouping
// of those dependencies.
package identity

import (
	"fmt"
	"strings"

	"github.com/depindex/resolver/version"
)

// PackageIdentity names one package release. Id comparisons are
// case-insensitive; version comparisons ignore build metadata.
type PackageIdentity struct {
	ID      string
	Version *version.Version
}

// New builds a PackageIdentity, preserving id's casing as given (callers
// constructing from a catalog entry should pass the server's casing, since
// it is canonical).
func New(id string, v *version.Version) PackageIdentity {
	return PackageIdentity{ID: id, Version: v}
}

// Equals reports whether two identities name the same release: id compares
// case-insensitively, version compares ignoring build metadata.
func (p PackageIdentity) Equals(other PackageIdentity) bool {
	if !strings.EqualFold(p.ID, other.ID) {
		return false
	}
	if p.Version == nil || other.Version == nil {
		return p.Version == other.Version
	}
	return p.Version.Equals(other.Version)
}

// Key returns a case-folded, build-metadata-stripped string suitable for use
// as a map key enforcing PackageIdentity equality (I3's set-under-equality
// requirement). Metadata is deliberately excluded so two versions that
// differ only in build metadata collide to the same key.
func (p PackageIdentity) Key() string {
	v := ""
	if p.Version != nil {
		v = fmt.Sprintf("%d.%d.%d.%d-%s",
			p.Version.Major, p.Version.Minor, p.Version.Patch, p.Version.Revision,
			strings.Join(p.Version.ReleaseLabels, "."))
	}
	return strings.ToLower(p.ID) + "|" + strings.ToLower(v)
}

func (p PackageIdentity) String() string {
	if p.Version == nil {
		return p.ID
	}
	return p.ID + " " + p.Version.String()
}
