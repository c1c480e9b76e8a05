package manifest

import "errors"

// Error kinds returned by document sessions. Callers match them with
// errors.Is; the CLI layer owns user-facing presentation and exit
// codes.
var (
	// ErrNotFound: the manifest path does not exist.
	ErrNotFound = errors.New("manifest not found")
	// ErrParse: the manifest content is not well-formed.
	ErrParse = errors.New("manifest parse error")
	// ErrNotLoaded: a document accessor was used before Load. This is
	// a usage-contract violation, not a parse failure.
	ErrNotLoaded = errors.New("manifest not loaded")
	// ErrMissingSection: the required top-level project mapping is
	// absent.
	ErrMissingSection = errors.New("project section missing")
	// ErrTypeMismatch: a manifest key exists but has the wrong shape.
	ErrTypeMismatch = errors.New("unexpected manifest value type")
	// ErrWrite: writing the document back to disk failed.
	ErrWrite = errors.New("manifest write error")
)
