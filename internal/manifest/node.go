package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// lookup returns the value node for key in a mapping node, or nil if
// the key is absent or the node is not a mapping.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// setKey sets key to value in a mapping node, appending the pair if
// the key is not present.
func setKey(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, strScalar(key), value)
}

func strScalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// stringSeq decodes a sequence node of string scalars.
func stringSeq(n *yaml.Node, label, path string) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s is not an array in %s", ErrTypeMismatch, label, path)
	}
	out := make([]string, 0, len(n.Content))
	for _, e := range n.Content {
		if e.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %s contains a non-string entry in %s", ErrTypeMismatch, label, path)
		}
		out = append(out, e.Value)
	}
	return out, nil
}
