package flatfeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	resolverhttp "github.com/depindex/resolver/http"
	"github.com/depindex/resolver/resolveerr"
)

func newTestFlatResolver() *Resolver {
	client := resolverhttp.NewClient(resolverhttp.DefaultConfig())
	return NewResolver(client, nil)
}

const atomFeedFixture = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <properties xmlns="metadata">
      <Id>A</Id>
      <Version>1.0.0</Version>
      <Published>2023-01-01T00:00:00Z</Published>
      <Dependencies>B:1.0.0:net45</Dependencies>
    </properties>
  </entry>
  <entry>
    <properties xmlns="metadata">
      <Id>A</Id>
      <Version>2.0.0</Version>
      <Published>1900-01-01T00:00:00Z</Published>
      <Dependencies></Dependencies>
    </properties>
  </entry>
</feed>`

func TestResolveAll_ParsesFeedAndFiltersUnlisted(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/FindPackagesById()", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "'A'" {
			t.Errorf("unexpected id query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, atomFeedFixture)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	r := newTestFlatResolver()
	got, err := r.ResolveAll(context.Background(), server.URL, "A")
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 listed entry, got %d: %+v", len(got), got)
	}
	if got[0].Identity.Version.String() != "1.0.0" {
		t.Errorf("unexpected version: %s", got[0].Identity.Version.String())
	}
	if len(got[0].Groups) != 1 || got[0].Groups[0].Framework != "net45" {
		t.Errorf("unexpected groups: %+v", got[0].Groups)
	}
}

func TestResolveAll_AbsentPackageReturnsEmpty(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	r := newTestFlatResolver()
	got, err := r.ResolveAll(context.Background(), server.URL, "Nope")
	if err != nil {
		t.Fatalf("expected no error for absent package, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestResolveAll_CancelledContextSurfacesErrCancelled(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestFlatResolver()
	_, err := r.ResolveAll(ctx, server.URL, "A")
	if !errors.Is(err, resolveerr.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected underlying context.Canceled to survive wrapping, got %v", err)
	}
}

func TestResolveAll_BadDocumentWrappedAsProtocolError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/FindPackagesById()", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not xml")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	r := newTestFlatResolver()
	_, err := r.ResolveAll(context.Background(), server.URL, "A")
	if err == nil {
		t.Fatal("expected error for malformed feed")
	}
	var pe *resolveerr.ProtocolError
	if !errors.As(err, &pe) || !errors.Is(err, resolveerr.ErrBadDocument) {
		t.Fatalf("expected a ProtocolError wrapping ErrBadDocument, got %v", err)
	}
}
