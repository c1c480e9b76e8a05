package manifest

import (
	"fmt"

	"github.com/fbkclanna/pmguard/internal/hub"
	"gopkg.in/yaml.v3"
)

// Guardrails returns the literal contents of the project's guardrails
// array. An absent key yields an empty list, not an error.
func (p *Project) Guardrails() ([]string, error) {
	t, err := p.projectTable()
	if err != nil {
		return nil, err
	}
	g := lookup(t, "guardrails")
	if g == nil {
		return nil, nil
	}
	return stringSeq(g, "project.guardrails", p.Path)
}

// AddGuardrail adds or updates a guardrail URI and returns the URI now
// in effect. Entries are matched by their parsed identifier: a pinned
// input replaces an existing entry for the same identifier, an
// unpinned input leaves an existing entry untouched and reports it
// back, and an unmatched input is appended.
func (p *Project) AddGuardrail(uri string) (string, error) {
	ref, err := hub.ParseURI(uri)
	if err != nil {
		return "", err
	}

	t, err := p.projectTable()
	if err != nil {
		return "", err
	}

	arr := lookup(t, "guardrails")
	if arr == nil {
		arr = &yaml.Node{Kind: yaml.SequenceNode}
		setKey(t, "guardrails", arr)
	} else if arr.Kind != yaml.SequenceNode {
		return "", fmt.Errorf("%w: project.guardrails is not an array in %s", ErrTypeMismatch, p.Path)
	}

	for _, e := range arr.Content {
		cur, err := p.entryRef(e)
		if err != nil {
			return "", err
		}
		if cur.ID != ref.ID {
			continue
		}
		// No downgrade to an unpinned reference: only a pinned input
		// replaces the entry.
		if ref.Pinned() {
			e.Value = uri
		}
		return e.Value, nil
	}

	arr.Content = append(arr.Content, strScalar(uri))
	return uri, nil
}

// RemoveGuardrail removes the first entry matching the URI's
// identifier; the version is ignored for matching. Removing an absent
// guardrail is a no-op.
func (p *Project) RemoveGuardrail(uri string) error {
	ref, err := hub.ParseURI(uri)
	if err != nil {
		return err
	}

	t, err := p.projectTable()
	if err != nil {
		return err
	}

	arr := lookup(t, "guardrails")
	if arr == nil {
		return nil
	}
	if arr.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: project.guardrails is not an array in %s", ErrTypeMismatch, p.Path)
	}

	for i, e := range arr.Content {
		cur, err := p.entryRef(e)
		if err != nil {
			return err
		}
		if cur.ID == ref.ID {
			arr.Content = append(arr.Content[:i], arr.Content[i+1:]...)
			return nil
		}
	}
	return nil
}

// entryRef parses one guardrails array entry.
func (p *Project) entryRef(e *yaml.Node) (hub.Ref, error) {
	if e.Kind != yaml.ScalarNode {
		return hub.Ref{}, fmt.Errorf("%w: project.guardrails contains a non-string entry in %s", ErrTypeMismatch, p.Path)
	}
	ref, err := hub.ParseURI(e.Value)
	if err != nil {
		return hub.Ref{}, fmt.Errorf("guardrail entry in %s: %w", p.Path, err)
	}
	return ref, nil
}
