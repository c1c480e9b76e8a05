package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the conventional manifest file name.
const Filename = "project.yaml"

// Project is a session over one manifest file. The document is held as
// a yaml node tree so that key order and comments of untouched regions
// survive a write-back. One session owns one in-memory document; no
// sharing across concurrent sessions is synchronized.
type Project struct {
	// Path is the manifest location on disk.
	Path string
	// ReadOnly sessions never write back, even if the in-memory
	// document was mutated.
	ReadOnly bool

	doc *yaml.Node // nil until Load
}

// Open starts a session bound to path. Only the existence of the file
// is checked here; parsing happens in Load.
func Open(path string, readOnly bool) (*Project, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return &Project{Path: path, ReadOnly: readOnly}, nil
}

// Load parses the manifest file into the in-memory document. It must
// be called before any document accessor.
func (p *Project) Load() error {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", p.Path, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, p.Path, err)
	}
	p.doc = &doc
	return nil
}

// Close finishes the session. When opErr is nil and the session is
// writable, the in-memory document is written back to Path, replacing
// its contents. A session that ends with an error, or that was opened
// read-only, never writes.
func (p *Project) Close(opErr error) error {
	if opErr != nil || p.ReadOnly || p.doc == nil {
		return nil
	}
	return p.save()
}

func (p *Project) save() error {
	if p.doc.Kind == 0 {
		// Empty document, nothing was ever parsed or added.
		return nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p.doc); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrWrite, p.Path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrWrite, p.Path, err)
	}
	if err := os.WriteFile(p.Path, buf.Bytes(), 0644); err != nil { //nolint:gosec // manifest file needs to be readable
		return fmt.Errorf("%w: %s: %v", ErrWrite, p.Path, err)
	}
	return nil
}

// Dir returns the directory containing the manifest. Workspace member
// patterns resolve relative to it.
func (p *Project) Dir() string {
	return filepath.Dir(p.Path)
}

// Update runs fn inside a writable session on path. The document is
// written back only when fn returns nil.
func Update(path string, fn func(*Project) error) error {
	return with(path, false, fn)
}

// View runs fn inside a read-only session on path. The file is never
// written, regardless of in-memory mutations made by fn.
func View(path string, fn func(*Project) error) error {
	return with(path, true, fn)
}

func with(path string, readOnly bool, fn func(*Project) error) error {
	p, err := Open(path, readOnly)
	if err != nil {
		return err
	}
	if err := p.Load(); err != nil {
		return err
	}
	opErr := fn(p)
	if cerr := p.Close(opErr); cerr != nil && opErr == nil {
		return cerr
	}
	return opErr
}

// root returns the top-level mapping of the document.
func (p *Project) root() (*yaml.Node, error) {
	if p.doc == nil {
		return nil, fmt.Errorf("%w: %s: Load must be called before accessing the document", ErrNotLoaded, p.Path)
	}
	if p.doc.Kind == yaml.DocumentNode && len(p.doc.Content) > 0 {
		return p.doc.Content[0], nil
	}
	return nil, nil
}

// projectTable returns the required top-level "project" mapping.
func (p *Project) projectTable() (*yaml.Node, error) {
	root, err := p.root()
	if err != nil {
		return nil, err
	}
	t := lookup(root, "project")
	if t == nil || t.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: no top-level %q mapping in %s", ErrMissingSection, "project", p.Path)
	}
	return t, nil
}

// Name returns the declared project name, or empty if not declared.
func (p *Project) Name() (string, error) {
	t, err := p.projectTable()
	if err != nil {
		return "", err
	}
	n := lookup(t, "name")
	if n == nil {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: project.name is not a string in %s", ErrTypeMismatch, p.Path)
	}
	return n.Value, nil
}

// WorkspaceMembers returns the workspace member glob patterns declared
// under tool.pm.workspace.members, or nil when absent.
func (p *Project) WorkspaceMembers() ([]string, error) {
	root, err := p.root()
	if err != nil {
		return nil, err
	}
	n := root
	for _, key := range []string{"tool", "pm", "workspace"} {
		n = lookup(n, key)
		if n == nil {
			return nil, nil
		}
	}
	m := lookup(n, "members")
	if m == nil {
		return nil, nil
	}
	return stringSeq(m, "tool.pm.workspace.members", p.Path)
}
