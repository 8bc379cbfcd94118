package registration

import (
	"fmt"

	"github.com/depindex/resolver/resolveerr"
	"github.com/depindex/resolver/version"
)

// SelectPages decides which index pages must be materialized to answer a
// query over requested. The selector is intentionally inclusive: it may
// over-fetch pages that share only a boundary version with the query,
// leaving the per-entry filter (C4) as the source of truth for final
// membership.
func SelectPages(index *Index, requested *version.Range) ([]Page, error) {
	// Widen the query: pre-release pages may contain eligible listed
	// versions; filtering by the original include_pre happens per-entry.
	q := requested.WithPre(true)

	var selected []Page
	for _, item := range index.Items {
		lower, err := version.Parse(item.Lower)
		if err != nil {
			return nil, fmt.Errorf("%w: page lower bound %q: %v", resolveerr.ErrBadDocument, item.Lower, err)
		}
		upper, err := version.Parse(item.Upper)
		if err != nil {
			return nil, fmt.Errorf("%w: page upper bound %q: %v", resolveerr.ErrBadDocument, item.Upper, err)
		}

		var required bool
		if q.HasBothBounds() {
			pageContains := func(v *version.Version) bool {
				return v.Compare(lower) >= 0 && v.Compare(upper) <= 0
			}
			required = pageContains(q.MinVersion) || pageContains(q.MaxVersion)
		} else {
			required = q.Satisfies(lower) || q.Satisfies(upper)
		}

		if required {
			selected = append(selected, item)
		}
	}

	return selected, nil
}
