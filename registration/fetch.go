package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/singleflight"

	resolverhttp "github.com/depindex/resolver/http"
	"github.com/depindex/resolver/observability"
	"github.com/depindex/resolver/resolveerr"
)

var errNotFound = errors.New("registration: not found")

// Fetcher issues the HTTP GETs behind C2, honouring a per-call session
// cache and coalescing concurrent in-flight requests for the same URL.
type Fetcher struct {
	client *resolverhttp.Client
	logger observability.Logger
	group  singleflight.Group
}

// NewFetcher wraps an HTTP client for use by the registration resolver.
func NewFetcher(client *resolverhttp.Client, logger observability.Logger) *Fetcher {
	if logger == nil {
		logger = observability.NewNullLogger()
	}
	return &Fetcher{client: client, logger: logger}
}

// fetchRaw implements the C2 contract: cache hit returns without network
// I/O; a 404 response returns errNotFound uncached; any other non-2xx
// status wraps resolveerr.ErrTransport; a 2xx response is cached keyed by
// url and returned. Concurrent callers for the same url are coalesced via
// singleflight so exactly one HTTP request is issued (I5).
func (f *Fetcher) fetchRaw(ctx context.Context, cache *Cache, url string) ([]byte, error) {
	if body, ok := cache.get(url); ok {
		observability.SessionCacheHitsTotal.WithLabelValues("document").Inc()
		return body, nil
	}
	observability.SessionCacheMissesTotal.WithLabelValues("document").Inc()

	v, err, _ := f.group.Do(url, func() (any, error) {
		if body, ok := cache.get(url); ok {
			return body, nil
		}

		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", url, err)
		}

		resp, err := f.client.DoWithRetry(ctx, req)
		if err != nil {
			observability.PagesFetchedTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %s: %v", resolveerr.ErrTransport, url, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusNotFound {
			observability.PagesFetchedTotal.WithLabelValues("miss").Inc()
			return nil, errNotFound
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			observability.PagesFetchedTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %s returned status %d", resolveerr.ErrTransport, url, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			observability.PagesFetchedTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: read body of %s: %v", resolveerr.ErrBadDocument, url, err)
		}

		cache.put(url, body)
		observability.PagesFetchedTotal.WithLabelValues("hit").Inc()
		return body, nil
	})
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	return v.([]byte), nil
}

// FetchIndex fetches and parses the registration index at url. It returns
// (nil, nil) when the index 404s (package absent, I4).
func (f *Fetcher) FetchIndex(ctx context.Context, cache *Cache, url string) (*Index, error) {
	body, err := f.fetchRaw(ctx, cache, url)
	if errors.Is(err, errNotFound) {
		f.logger.DebugContext(ctx, "registration index {URL} absent (404)", url)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var idx Index
	if err := json.Unmarshal(body, &idx); err != nil {
		return nil, fmt.Errorf("%w: decode registration index %s: %v", resolveerr.ErrBadDocument, url, err)
	}
	return &idx, nil
}

// FetchPage fetches and parses one registration page at url. Unlike the
// index, a page referenced by @id is expected to exist: a 404 here is a
// protocol violation (BadDocument), not package absence.
func (f *Fetcher) FetchPage(ctx context.Context, cache *Cache, url string) (*Page, error) {
	body, err := f.fetchRaw(ctx, cache, url)
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("%w: registration page %s referenced by index but not found", resolveerr.ErrBadDocument, url)
	}
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode registration page %s: %v", resolveerr.ErrBadDocument, url, err)
	}
	return &page, nil
}
