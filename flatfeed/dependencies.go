package flatfeed

import (
	"fmt"
	"strings"

	"github.com/depindex/resolver/identity"
	"github.com/depindex/resolver/resolveerr"
	"github.com/depindex/resolver/version"
)

// parseDependencies decodes the flat protocol's pipe-delimited dependency
// string ("id:range:framework|id2:range2:framework2|...") into dependency
// groups keyed by normalized framework short folder name (see
// identity.NormalizeFrameworkTag). A missing or empty framework segment
// joins the AnyFramework group. A missing or unparseable range is
// tolerated as a nil (any-version) range; a triple with no id is a decode
// failure.
func parseDependencies(raw string) ([]identity.PackageDependencyGroup, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	order := make([]identity.FrameworkTag, 0)
	byFramework := make(map[identity.FrameworkTag][]identity.PackageDependency)

	for _, triple := range strings.Split(raw, "|") {
		triple = strings.TrimSpace(triple)
		if triple == "" {
			continue
		}
		parts := strings.SplitN(triple, ":", 3)
		id := strings.TrimSpace(parts[0])
		if id == "" {
			return nil, fmt.Errorf("%w: dependency triple %q has no id", resolveerr.ErrBadDocument, triple)
		}

		var rangeToken, framework string
		if len(parts) > 1 {
			rangeToken = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			framework = strings.TrimSpace(parts[2])
		}
		framework = identity.NormalizeFrameworkTag(framework)

		var rng *version.Range
		if rangeToken != "" {
			if parsed, err := version.ParseVersionRange(rangeToken); err == nil {
				rng = parsed
			}
		}

		if _, ok := byFramework[framework]; !ok {
			order = append(order, framework)
		}
		byFramework[framework] = append(byFramework[framework], identity.PackageDependency{ID: id, Range: rng})
	}

	groups := make([]identity.PackageDependencyGroup, 0, len(order))
	for _, fw := range order {
		groups = append(groups, identity.PackageDependencyGroup{Framework: fw, Deps: byFramework[fw]})
	}
	return groups, nil
}
