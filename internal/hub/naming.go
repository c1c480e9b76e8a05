package hub

import "strings"

// namePrefix is the fixed prefix under which guardrail packages are
// published on the hub index.
const namePrefix = "guardhub-"

// NormalizedPackageName maps a guardrail identifier to the installable
// package name published on the hub index. The convention is owned by
// the hub: a fixed prefix, path separators and underscores become
// hyphens, all lowercase.
func NormalizedPackageName(id string) string {
	name := strings.ToLower(id)
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "_", "-")
	return namePrefix + name
}

// ResolvePackageName maps a package specifier to the name understood
// by the package manager. Ordinary specifiers pass through unchanged;
// hub URIs resolve to the normalized package name with the version
// specifier appended verbatim.
func ResolvePackageName(pkg string) (string, error) {
	if !IsHubURI(pkg) {
		return pkg, nil
	}

	ref, err := ParseURI(pkg)
	if err != nil {
		return "", err
	}
	return NormalizedPackageName(ref.ID) + ref.Spec, nil
}
