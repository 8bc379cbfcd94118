package registration

import (
	"testing"

	"github.com/depindex/resolver/version"
)

func mkIndex(items ...Page) *Index {
	return &Index{Count: len(items), Items: items}
}

func TestSelectPages_RangeFilter(t *testing.T) {
	index := mkIndex(
		Page{ID: "p1", Lower: "1.0.0", Upper: "1.5.0", Items: []Leaf{
			{CatalogEntry: &CatalogEntry{ID: "A", Version: "1.0.0"}},
			{CatalogEntry: &CatalogEntry{ID: "A", Version: "1.2.0"}},
			{CatalogEntry: &CatalogEntry{ID: "A", Version: "1.5.0"}},
		}},
		Page{ID: "p2", Lower: "2.0.0", Upper: "2.0.0", Items: []Leaf{
			{CatalogEntry: &CatalogEntry{ID: "A", Version: "2.0.0"}},
		}},
	)

	r := version.MustParseRange("[1.1.0, 1.9.0]")
	selected, err := SelectPages(index, r)
	if err != nil {
		t.Fatalf("SelectPages: %v", err)
	}
	if len(selected) != 1 || selected[0].ID != "p1" {
		t.Errorf("expected only p1 selected, got %+v", selected)
	}
}

func TestSelectPages_BoundaryVersionIncluded(t *testing.T) {
	index := mkIndex(
		Page{ID: "p1", Lower: "1.0.0", Upper: "1.0.0", Items: []Leaf{
			{CatalogEntry: &CatalogEntry{ID: "A", Version: "1.0.0"}},
		}},
	)
	r := version.MustParseRange("[1.0.0, 1.0.0]")
	selected, err := SelectPages(index, r)
	if err != nil {
		t.Fatalf("SelectPages: %v", err)
	}
	if len(selected) != 1 {
		t.Errorf("expected boundary page to be selected, got %d pages", len(selected))
	}
}

func TestSelectPages_UnboundedRequiresAllPages(t *testing.T) {
	index := mkIndex(
		Page{ID: "p1", Lower: "1.0.0", Upper: "1.5.0"},
		Page{ID: "p2", Lower: "2.0.0", Upper: "2.0.0"},
	)
	r := version.MustParseRange("0.0.0")
	r = &version.Range{IncludePre: false} // fully unbounded
	selected, err := SelectPages(index, r)
	if err != nil {
		t.Fatalf("SelectPages: %v", err)
	}
	if len(selected) != 2 {
		t.Errorf("expected all pages selected for unbounded range, got %d", len(selected))
	}
}

func TestSelectPages_InlineItemsNotRefetched(t *testing.T) {
	index := mkIndex(
		Page{ID: "https://example.test/should-not-fetch", Lower: "1.0.0", Upper: "1.0.0", Items: []Leaf{
			{CatalogEntry: &CatalogEntry{ID: "A", Version: "1.0.0"}},
		}},
	)
	r := version.AllVersions()
	selected, err := SelectPages(index, r)
	if err != nil {
		t.Fatalf("SelectPages: %v", err)
	}
	if len(selected) != 1 || len(selected[0].Items) == 0 {
		t.Errorf("expected inline page to be returned with items populated")
	}
}
