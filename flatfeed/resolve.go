package flatfeed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	resolverhttp "github.com/depindex/resolver/http"
	"github.com/depindex/resolver/identity"
	"github.com/depindex/resolver/observability"
	"github.com/depindex/resolver/resolveerr"
	"github.com/depindex/resolver/version"
)

// unlistedSentinel mirrors registration's unlisted-publish-date marker; the
// flat protocol encodes the same convention in its Published property.
const unlistedSentinel = "19000101"

// Resolver adapts a flat-listing repository (protocol-F) into the common
// DependencyInfo result shape, using the FindPackagesById() Atom feed
// endpoint to enumerate every version of a package in a single call.
type Resolver struct {
	client *resolverhttp.Client
	logger observability.Logger
}

// NewResolver builds a protocol-F resolver over the given HTTP client.
func NewResolver(client *resolverhttp.Client, logger observability.Logger) *Resolver {
	if logger == nil {
		logger = observability.NewNullLogger()
	}
	return &Resolver{client: client, logger: logger}
}

// ResolveAll fetches every listed release of id from feedURL and returns a
// DependencyInfo per release. A package absent from the feed (empty result
// set, not a transport failure) returns an empty, non-error slice.
func (r *Resolver) ResolveAll(ctx context.Context, feedURL, id string) ([]identity.DependencyInfo, error) {
	ctx, span := observability.StartSpan(ctx, "flatfeed", "resolve")
	defer span.End()
	start := time.Now()
	defer func() {
		observability.ResolveDuration.WithLabelValues("flat").Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", resolveerr.ErrCancelled, err)
	}

	listURL := listVersionsURL(feedURL, id)

	feedDoc, err := r.fetchFeed(ctx, listURL, id)
	if err != nil {
		return nil, err
	}
	if feedDoc == nil {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", resolveerr.ErrCancelled, err)
	}

	out :=make([]identity.DependencyInfo, 0, len(feedDoc.Entries))
	for _, e := range feedDoc.Entries {
		info, err := decodeEntry(e.Properties)
		if err != nil {
			return nil, resolveerr.NewProtocolError(id, listURL, err)
		}
		if info == nil {
			continue
		}
		out = append(out, *info)
	}
	return out, nil
}

func (r *Resolver) fetchFeed(ctx context.Context, listURL, id string) (*feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", resolveerr.ErrInvalidArgument, err)
	}

	resp, err := r.client.DoWithRetry(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", resolveerr.ErrCancelled, ctxErr)
		}
		return nil, resolveerr.NewProtocolError(id, listURL, fmt.Errorf("%w: %w", resolveerr.ErrTransport, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, resolveerr.NewProtocolError(id, listURL, fmt.Errorf("%w: feed returned %d: %s", resolveerr.ErrTransport, resp.StatusCode, body))
	}

	var doc feed
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", resolveerr.ErrCancelled, ctxErr)
		}
		return nil, resolveerr.NewProtocolError(id, listURL, fmt.Errorf("%w: decode feed: %w", resolveerr.ErrBadDocument, err))
	}
	r.logger.DebugContext(ctx, "flat feed {URL} returned {Count} entries", listURL, len(doc.Entries))
	return &doc, nil
}

func decodeEntry(p properties) (*identity.DependencyInfo, error) {
	v, err := version.Parse(p.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: feed entry version %q: %v", resolveerr.ErrBadDocument, p.Version, err)
	}
	if isUnlisted(p.Published) {
		return nil, nil
	}

	groups, err := parseDependencies(p.Dependencies)
	if err != nil {
		return nil, err
	}

	return &identity.DependencyInfo{
		Identity: identity.New(p.ID, v),
		Groups:   groups,
	}, nil
}

func isUnlisted(published string) bool {
	if published == "" {
		return false
	}
	var digits strings.Builder
	for _, c := range published {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
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

func listVersionsURL(feedURL, id string) string {
	base := feedURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return fmt.Sprintf("%sFindPackagesById()?id='%s'", base, url.QueryEscape(id))
}
