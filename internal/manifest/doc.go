// Package manifest provides sessions over project.yaml manifests. A
// session is opened against a path, loads the document on demand, and
// writes it back on a clean close unless opened read-only. The
// document is kept as a yaml node tree so unrelated content survives a
// rewrite, and guardrail entries are managed with identity-based
// deduplication.
package manifest
