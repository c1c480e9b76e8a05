// Package workspace aggregates guardrail references across a
// multi-package workspace tree. A root manifest may declare member
// glob patterns; aggregation recursively loads member manifests
// read-only and merges their guardrail lists under an
// inclusion/exclusion filter.
package workspace
