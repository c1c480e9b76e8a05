package hub

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme is the URI prefix that marks a guardrail hub reference.
const Scheme = "hub://"

// ErrMalformedReference indicates a hub URI with no identifier after
// the scheme prefix.
var ErrMalformedReference = errors.New("malformed hub reference")

// Ref is a parsed guardrail reference. ID is the version-independent
// identity (e.g. "ns/name") used for deduplication and matching. Spec
// is the version suffix exactly as written, delimiter included
// (">=1.0.0" or ":v1.0.0"); empty when the reference is unpinned.
type Ref struct {
	ID   string
	Spec string
}

// String serializes the reference back to a hub URI.
func (r Ref) String() string {
	return Scheme + r.ID + r.Spec
}

// Pinned reports whether the reference carries a version specifier.
func (r Ref) Pinned() bool {
	return r.Spec != ""
}

// IsHubURI reports whether the given package specifier is a guardrail
// hub URI.
func IsHubURI(pkg string) bool {
	return strings.HasPrefix(pkg, Scheme)
}

// specDelimiters are the characters that may begin a version suffix:
// comparison operators (>=1.0.0) or an exact pin (:v1.0.0).
const specDelimiters = "><=!~:"

// ParseURI splits a hub URI into its identifier and version specifier.
func ParseURI(uri string) (Ref, error) {
	rest := strings.TrimPrefix(uri, Scheme)
	if rest == uri {
		return Ref{}, fmt.Errorf("%w: missing %s prefix: %q", ErrMalformedReference, Scheme, uri)
	}

	id, spec := rest, ""
	if i := strings.IndexAny(rest, specDelimiters); i >= 0 {
		id, spec = rest[:i], rest[i:]
	}
	if id == "" {
		return Ref{}, fmt.Errorf("%w: empty identifier: %q", ErrMalformedReference, uri)
	}

	return Ref{ID: id, Spec: spec}, nil
}
