// Package testutil provides manifest fixtures and stub external
// executables for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fbkclanna/pmguard/internal/manifest"
)

// WriteManifest writes a project.yaml with the given content under dir
// and returns its path.
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, manifest.Filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return path
}

// WorkspaceFixture creates a workspace tree in a temp directory:
// a root manifest declaring guardrail "hub://root-guard" and members
// "packages/*", plus members pkg-a ("hub://pkg-a-guard") and pkg-b
// ("hub://pkg-b-guard"). Returns the root manifest path.
func WorkspaceFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	root := WriteManifest(t, dir, `project:
  name: root-project
  version: 0.1.0
  guardrails:
    - hub://root-guard

tool:
  pm:
    workspace:
      members:
        - packages/*
`)

	WriteManifest(t, filepath.Join(dir, "packages", "pkg-a"), `project:
  name: pkg-a
  version: 0.1.0
  guardrails:
    - hub://pkg-a-guard
`)

	WriteManifest(t, filepath.Join(dir, "packages", "pkg-b"), `project:
  name: pkg-b
  version: 0.1.0
  guardrails:
    - hub://pkg-b-guard
`)

	return root
}

// StubExecutable installs a fake executable with the given name on
// PATH that appends each invocation's arguments to a log file, one
// line per call. Returns the log path.
func StubExecutable(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, name+".log")

	script := "#!/bin/sh\necho \"$@\" >> " + logPath + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

// StubCalls returns the logged invocations of a stub executable, one
// argument line per call. A missing log means no calls were made.
func StubCalls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath) //nolint:gosec // test log file
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
