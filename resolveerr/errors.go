// Package resolveerr defines the error kinds surfaced by the metadata
// resolver across both protocols.
package resolveerr

import "errors"

var (
	// ErrInvalidArgument indicates a null/empty id or other caller input
	// that never reaches the network.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBadVersion indicates a version string failed to parse.
	ErrBadVersion = errors.New("bad version")

	// ErrBadRange indicates a version range string failed to parse.
	ErrBadRange = errors.New("bad range")

	// ErrTransport indicates a non-2xx HTTP response (other than an
	// index-level 404) or a socket failure.
	ErrTransport = errors.New("transport error")

	// ErrBadDocument indicates an unparseable response body, a missing
	// required field, or a page referenced by @id that itself 404s.
	ErrBadDocument = errors.New("bad document")

	// ErrCancelled indicates the caller's context was cancelled.
	ErrCancelled = errors.New("cancelled")

	// ErrProtocol wraps an internal error with the package query and
	// source URL, for surfacing by the flat-listing adapter (C6).
	ErrProtocol = errors.New("protocol error")
)
