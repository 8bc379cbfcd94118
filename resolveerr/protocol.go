package resolveerr

import "fmt"

// ProtocolError wraps an underlying transport or document error with the
// package query and source URL that produced it, for display by callers of
// the flat-listing adapter (C6).
type ProtocolError struct {
	Query  string
	Source string
	Err    error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error resolving %q from %s: %v", e.Query, e.Source, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Is reports ErrProtocol membership so callers can use errors.Is(err, resolveerr.ErrProtocol).
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// NewProtocolError constructs a ProtocolError for the given package query
// and source URL.
func NewProtocolError(query, source string, err error) *ProtocolError {
	return &ProtocolError{Query: query, Source: source, Err: err}
}
