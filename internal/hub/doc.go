// Package hub handles guardrail hub URIs: classifying package
// specifiers, parsing references into identifier and version
// specifier, and resolving them to installable package names.
package hub
