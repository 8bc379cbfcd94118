package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	resolverhttp "github.com/depindex/resolver/http"
	"github.com/depindex/resolver/resolveerr"
)

// resourceTypeRegistrationsBaseURL is the service-index resource @type that
// advertises protocol-R support.
const resourceTypeRegistrationsBaseURL = "RegistrationsBaseUrl"

// serviceIndex and resource mirror just enough of a v3-style service index
// to run the capability probe; the facade never needs search, publish, or
// download resources, so those resource types are not modeled here.
type serviceIndex struct {
	Resources []resource `json:"resources"`
}

type resource struct {
	ID   string `json:"@id"`
	Type string `json:"@type"`
}

// protocol identifies which back-end a probed source should use.
type protocol int

const (
	protocolFlat protocol = iota
	protocolRegistration
)

// probe fetches sourceURL and determines whether it is a protocol-R service
// index (in which case it returns the RegistrationsBaseUrl resource) or a
// protocol-F flat feed base (in which case sourceURL itself is the base).
// A document that doesn't parse as a service index, or that parses but
// carries no registrations resource, is treated as a flat feed base: the
// probe never fails on that account alone.
func probe(ctx context.Context, client *resolverhttp.Client, sourceURL string) (protocol, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return protocolFlat, sourceURL, fmt.Errorf("%w: build probe request: %v", resolveerr.ErrInvalidArgument, err)
	}

	resp, err := client.DoWithRetry(ctx, req)
	if err != nil {
		return protocolFlat, sourceURL, fmt.Errorf("%w: %v", resolveerr.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return protocolFlat, sourceURL, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return protocolFlat, sourceURL, nil
	}

	var idx serviceIndex
	if err := json.Unmarshal(body, &idx); err != nil {
		return protocolFlat, sourceURL, nil
	}

	for _, r := range idx.Resources {
		if matchesResourceType(r.Type, resourceTypeRegistrationsBaseURL) && r.ID != "" {
			return protocolRegistration, r.ID, nil
		}
	}
	return protocolFlat, sourceURL, nil
}

// matchesResourceType reports whether actual names requested, ignoring a
// trailing version suffix (e.g. "RegistrationsBaseUrl/3.6.0" matches
// "RegistrationsBaseUrl").
func matchesResourceType(actual, requested string) bool {
	if actual == requested {
		return true
	}
	return len(actual) > len(requested) && actual[:len(requested)] == requested && actual[len(requested)] == '/'
}
