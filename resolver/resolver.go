// Package resolver exposes the uniform capability facade (resolve_one,
// resolve_all) over the two supported back-ends: the paged registration
// protocol (registration.Resolver) and the flat listing protocol
// (flatfeed.Resolver).
package resolver

import (
	"context"
	"fmt"

	"github.com/depindex/resolver/flatfeed"
	resolverhttp "github.com/depindex/resolver/http"
	"github.com/depindex/resolver/identity"
	"github.com/depindex/resolver/observability"
	"github.com/depindex/resolver/registration"
	"github.com/depindex/resolver/resolveerr"
	"github.com/depindex/resolver/version"
)

// Resolver is the uniform entry point for package metadata lookups. It is
// bound to one repository at construction time and dispatches every call to
// whichever back-end that repository's capability probe selected.
type Resolver struct {
	client *resolverhttp.Client
	logger observability.Logger

	proto               protocol
	registrationBaseURL string
	flatFeedURL         string

	registration *registration.Resolver
	flat         *flatfeed.Resolver
}

// New probes sourceURL and builds a Resolver bound to whichever back-end
// the repository advertises. sourceURL is either a protocol-R service index
// URL or a protocol-F flat feed base URL; the probe distinguishes them.
func New(ctx context.Context, client *resolverhttp.Client, sourceURL string, logger observability.Logger) (*Resolver, error) {
	if logger == nil {
		logger = observability.NewNullLogger()
	}
	if client == nil {
		client = resolverhttp.NewClient(resolverhttp.DefaultConfig())
	}

	proto, baseURL, err := probe(ctx, client, sourceURL)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		client: client,
		logger: logger,
		proto:  proto,
	}
	switch proto {
	case protocolRegistration:
		r.registrationBaseURL = baseURL
		r.registration = registration.NewResolver(registration.NewFetcher(client, logger), logger)
	default:
		r.flatFeedURL = baseURL
		r.flat = flatfeed.NewResolver(client, logger)
	}
	return r, nil
}

// ResolveOne fetches metadata for exactly one (id, version). It returns
// (nil, nil) when the package or version is not found. Inputs are
// validated before any network call: an empty id fails InvalidArgument, an
// unparseable versionStr fails BadVersion.
func (r *Resolver) ResolveOne(ctx context.Context, id, versionStr string) (*identity.DependencyInfo, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: package id is empty", resolveerr.ErrInvalidArgument)
	}
	v, err := version.Parse(versionStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", resolveerr.ErrBadVersion, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", resolveerr.ErrCancelled, err)
	}

	cache := registration.NewCache()
	switch r.proto {
	case protocolRegistration:
		indexURL := registration.IndexURL(r.registrationBaseURL, id)
		results, err := r.registration.Resolve(ctx, indexURL, version.ExactVersion(v), cache)
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			return nil, nil
		}
		return &results[0], nil
	default:
		all, err := r.flat.ResolveAll(ctx, r.flatFeedURL, id)
		if err != nil {
			return nil, err
		}
		for _, info := range all {
			if info.Identity.Version.Equals(v) {
				return &info, nil
			}
		}
		return nil, nil
	}
}

// ResolveAll fetches metadata for every known version of id, including
// pre-release. It returns an empty, non-error slice when the package is
// absent from the repository.
func (r *Resolver) ResolveAll(ctx context.Context, id string) ([]identity.DependencyInfo, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: package id is empty", resolveerr.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", resolveerr.ErrCancelled, err)
	}

	cache := registration.NewCache()
	switch r.proto {
	case protocolRegistration:
		indexURL := registration.IndexURL(r.registrationBaseURL, id)
		return r.registration.Resolve(ctx, indexURL, version.AllVersions(), cache)
	default:
		return r.flat.ResolveAll(ctx, r.flatFeedURL, id)
	}
}
