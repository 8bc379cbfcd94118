// Package registration implements the paged registration index protocol
// (protocol-R): a hierarchical JSON document, partitioned into version-range
// pages that may be fetched on demand, with per-session memoization and
// concurrent page fan-out.
package registration

// Index is the top-level registration document for one package id.
type Index struct {
	Count int    `json:"count,omitempty"`
	Items []Page `json:"items"`
}

// Page describes one version-range partition of the index. Lower and Upper
// bound the page inclusively. If Items is non-empty the page is already
// materialized inline and ID must not be re-fetched.
type Page struct {
	ID    string `json:"@id"`
	Count int    `json:"count,omitempty"`
	Lower string `json:"lower"`
	Upper string `json:"upper"`
	Items []Leaf `json:"items,omitempty"`
}

// Leaf is one entry within a page, wrapping the catalog entry for a single
// package version.
type Leaf struct {
	ID           string     `json:"@id,omitempty"`
	CatalogEntry *CatalogEntry `json:"catalogEntry"`
}

// CatalogEntry is the per-version record carrying id, version, listing
// state, and declared dependencies.
type CatalogEntry struct {
	ID               string            `json:"id"`
	Version          string            `json:"version"`
	Published        string            `json:"published,omitempty"`
	DependencyGroups []DependencyGroup `json:"dependencyGroups,omitempty"`
}

// DependencyGroup is the wire shape of one framework-scoped dependency set.
type DependencyGroup struct {
	TargetFramework string       `json:"targetFramework,omitempty"`
	Dependencies    []Dependency `json:"dependencies,omitempty"`
}

// Dependency is the wire shape of one declared dependency edge.
type Dependency struct {
	ID    string `json:"id"`
	Range string `json:"range,omitempty"`
}
