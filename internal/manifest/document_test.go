package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return path
}

const basicManifest = `# build settings live here
project:
  name: root-project
  version: 0.1.0
`

func TestOpen_notFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.yaml"), false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOpen_noParsing(t *testing.T) {
	// Open only checks existence; malformed content must not fail
	// until Load.
	path := writeFile(t, "guardrails: [unclosed")
	p, err := Open(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Load(); !errors.Is(err, ErrParse) {
		t.Fatalf("Load err = %v, want ErrParse", err)
	}
}

func TestAccessor_beforeLoad(t *testing.T) {
	path := writeFile(t, basicManifest)
	p, err := Open(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Guardrails(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("err = %v, want ErrNotLoaded", err)
	}
}

func TestProjectSection_missing(t *testing.T) {
	path := writeFile(t, "tool:\n  pm: {}\n")
	p, err := Open(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Guardrails(); !errors.Is(err, ErrMissingSection) {
		t.Errorf("Guardrails err = %v, want ErrMissingSection", err)
	}
	if _, err := p.AddGuardrail("hub://x"); !errors.Is(err, ErrMissingSection) {
		t.Errorf("AddGuardrail err = %v, want ErrMissingSection", err)
	}
}

func TestGuardrails_absentKey(t *testing.T) {
	path := writeFile(t, basicManifest)
	p, err := Open(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	gr, err := p.Guardrails()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gr) != 0 {
		t.Errorf("got %v, want empty", gr)
	}
}

func TestGuardrails_typeMismatch(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"scalar value", `
project:
  name: p
  guardrails: not-a-list
`},
		{"mapping value", `
project:
  name: p
  guardrails:
    a: b
`},
		{"nested entry", `
project:
  name: p
  guardrails:
    - [nested]
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.yaml)
			p, err := Open(path, true)
			if err != nil {
				t.Fatal(err)
			}
			if err := p.Load(); err != nil {
				t.Fatal(err)
			}
			if _, err := p.Guardrails(); !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("err = %v, want ErrTypeMismatch", err)
			}
		})
	}
}

func TestUpdate_writesBack(t *testing.T) {
	path := writeFile(t, basicManifest)

	err := Update(path, func(p *Project) error {
		_, err := p.AddGuardrail("hub://ns/check")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "hub://ns/check") {
		t.Errorf("guardrail not persisted:\n%s", content)
	}
	// Untouched regions survive the rewrite.
	if !strings.Contains(content, "# build settings live here") {
		t.Errorf("comment lost on write-back:\n%s", content)
	}
	if !strings.Contains(content, "version: 0.1.0") {
		t.Errorf("unrelated key lost on write-back:\n%s", content)
	}
}

func TestView_neverWrites(t *testing.T) {
	path := writeFile(t, basicManifest)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	err = View(path, func(p *Project) error {
		_, err := p.AddGuardrail("hub://ns/check")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("read-only session modified the file:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestClose_errorSkipsWrite(t *testing.T) {
	path := writeFile(t, basicManifest)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err = Update(path, func(p *Project) error {
		if _, err := p.AddGuardrail("hub://ns/check"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("session ending in error must not write")
	}
}

func TestName(t *testing.T) {
	path := writeFile(t, basicManifest)
	p, err := Open(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	name, err := p.Name()
	if err != nil {
		t.Fatal(err)
	}
	if name != "root-project" {
		t.Errorf("name = %q, want %q", name, "root-project")
	}
}

func TestWorkspaceMembers(t *testing.T) {
	path := writeFile(t, `
project:
  name: p

tool:
  pm:
    workspace:
      members:
        - packages/*
        - extras/**
`)
	p, err := Open(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	members, err := p.WorkspaceMembers()
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 || members[0] != "packages/*" || members[1] != "extras/**" {
		t.Errorf("members = %v", members)
	}
}

func TestWorkspaceMembers_absent(t *testing.T) {
	path := writeFile(t, basicManifest)
	p, err := Open(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	members, err := p.WorkspaceMembers()
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 0 {
		t.Errorf("members = %v, want empty", members)
	}
}
