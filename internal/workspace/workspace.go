package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fbkclanna/pmguard/internal/manifest"
)

// Filter controls which workspace nodes contribute guardrails to an
// aggregation. Exclusion always wins; the root node is governed by
// Project, non-root nodes by All or Packages membership. The same
// filter is inherited verbatim down the recursion.
type Filter struct {
	All      bool
	Packages map[string]bool
	Skip     map[string]bool
	Project  bool
}

// NewFilter builds a Filter from CLI-style slices.
func NewFilter(all bool, packages, skip []string, project bool) Filter {
	return Filter{
		All:      all,
		Packages: toSet(packages),
		Skip:     toSet(skip),
		Project:  project,
	}
}

// DefaultFilter includes the root project only.
func DefaultFilter() Filter {
	return Filter{Project: true}
}

// Guardrails aggregates guardrail URIs across the project and its
// workspace members into one flat list, deduplicated by full URI
// string, in first-seen order. The tree is re-walked on every call;
// member manifests are opened read-only and never written.
func Guardrails(p *manifest.Project, f Filter) ([]string, error) {
	seen := make(map[string]bool)
	return aggregate(p, f, true, seen, nil)
}

func aggregate(p *manifest.Project, f Filter, isRoot bool, seen map[string]bool, out []string) ([]string, error) {
	include, err := includeSelf(p, f, isRoot)
	if err != nil {
		return nil, err
	}
	if include {
		local, err := p.Guardrails()
		if err != nil {
			return nil, err
		}
		for _, uri := range local {
			if !seen[uri] {
				seen[uri] = true
				out = append(out, uri)
			}
		}
	}

	members, err := memberManifests(p)
	if err != nil {
		return nil, err
	}
	for _, path := range members {
		child, err := manifest.Open(path, true)
		if err != nil {
			return nil, err
		}
		if err := child.Load(); err != nil {
			return nil, err
		}
		out, err = aggregate(child, f, false, seen, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func includeSelf(p *manifest.Project, f Filter, isRoot bool) (bool, error) {
	name, err := p.Name()
	if err != nil {
		return false, err
	}
	if f.Skip[name] {
		return false, nil
	}
	if isRoot {
		return f.Project, nil
	}
	return f.All || f.Packages[name], nil
}

// memberManifests expands the node's workspace member patterns into
// existing member manifest paths. Candidates without a manifest are
// skipped silently, as is the node's own manifest (self-cycle guard;
// cycles through an ancestor other than the node itself are not
// detected).
func memberManifests(p *manifest.Project) ([]string, error) {
	patterns, err := p.WorkspaceMembers()
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return nil, nil
	}

	self, err := filepath.Abs(p.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", p.Path, err)
	}

	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(p.Dir(), pattern))
		if err != nil {
			return nil, fmt.Errorf("workspace member pattern %q: %w", pattern, err)
		}
		for _, dir := range matches {
			info, statErr := os.Stat(dir)
			if statErr != nil || !info.IsDir() {
				continue
			}
			mf := filepath.Join(dir, manifest.Filename)
			abs, err := filepath.Abs(mf)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", mf, err)
			}
			if abs == self {
				continue
			}
			if _, statErr := os.Stat(abs); statErr != nil {
				continue
			}
			paths = append(paths, abs)
		}
	}
	return paths, nil
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
