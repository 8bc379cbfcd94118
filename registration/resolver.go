package registration

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/depindex/resolver/identity"
	"github.com/depindex/resolver/observability"
	"github.com/depindex/resolver/resolveerr"
	"github.com/depindex/resolver/version"
)

// Resolver orchestrates C2-C4 (the protocol-R back-end, C5): fetch the
// index, fan out page loads, decode entries, and return a deduplicated
// DependencyInfo set for a requested range.
type Resolver struct {
	fetcher *Fetcher
	logger  observability.Logger
}

// NewResolver builds a protocol-R resolver over the given fetcher.
func NewResolver(fetcher *Fetcher, logger observability.Logger) *Resolver {
	if logger == nil {
		logger = observability.NewNullLogger()
	}
	return &Resolver{fetcher: fetcher, logger: logger}
}

// Resolve fetches the registration index at indexURL and returns every
// catalog entry satisfying requested. A nil index (package absent, 404)
// returns an empty, non-error result (I4).
func (r *Resolver) Resolve(ctx context.Context, indexURL string, requested *version.Range, cache *Cache) ([]identity.DependencyInfo, error) {
	ctx, span := observability.StartSpan(ctx, "registration", "resolve")
	defer span.End()
	start := time.Now()
	defer func() {
		observability.ResolveDuration.WithLabelValues("registration").Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", resolveerr.ErrCancelled, err)
	}

	index, err := r.fetcher.FetchIndex(ctx, cache, indexURL)
	if err != nil {
		return nil, err
	}
	if index == nil {
		r.logger.DebugContext(ctx, "registration index {URL} absent, returning empty set", indexURL)
		return nil, nil
	}

	pages, err := SelectPages(index, requested)
	if err != nil {
		return nil, err
	}

	resolved := make([]*Page, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	for i, page := range pages {
		i, page := i, page
		if len(page.Items) > 0 {
			p := page
			resolved[i] = &p
			continue
		}
		g.Go(func() error {
			fetched, err := r.fetcher.FetchPage(gctx, cache, page.ID)
			if err != nil {
				return err
			}
			resolved[i] = fetched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", resolveerr.ErrCancelled, err)
	}

	seen := make(map[string]struct{})
	var out []identity.DependencyInfo
	for _, page := range resolved {
		if page == nil {
			continue
		}
		for _, leaf := range page.Items {
			if leaf.CatalogEntry == nil {
				continue
			}
			info, err := DecodeEntry(leaf.CatalogEntry, requested)
			if err != nil {
				return nil, err
			}
			if info == nil {
				continue
			}
			key := info.Identity.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, *info)
		}
	}

	r.logger.DebugContext(ctx, "registration resolve returned {Count} entries from {PageCount} pages", len(out), len(pages))
	return out, nil
}

// IndexURL builds the conventional registration index URL for id beneath
// baseURL, lower-casing the id segment the way registration servers expect.
func IndexURL(baseURL, id string) string {
	return fmt.Sprintf("%s/%s/index.json", trimTrailingSlash(baseURL), lower(id))
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
