package main

import (
	"testing"

	"github.com/fbkclanna/pmguard/internal/testutil"
)

func TestSync_rootOnly(t *testing.T) {
	hubToken(t, "tok")
	pmLog := testutil.StubExecutable(t, "pm")
	path := testutil.WorkspaceFixture(t)

	_, err := execCommand(t, "sync", "--manifest", path)
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.StubCalls(t, pmLog)
	want := []string{
		"sync --quiet " + testIndexFlags,
		"run --quiet guardhub install hub://root-guard",
	}
	if len(calls) != len(want) {
		t.Fatalf("got calls %q, want %q", calls, want)
	}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: got %q, want %q", i, calls[i], w)
		}
	}
}

func TestSync_allPackages(t *testing.T) {
	hubToken(t, "tok")
	pmLog := testutil.StubExecutable(t, "pm")
	path := testutil.WorkspaceFixture(t)

	_, err := execCommand(t, "sync", "--manifest", path, "--all-packages")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.StubCalls(t, pmLog)
	want := []string{
		"sync --quiet " + testIndexFlags + " --all-packages",
		"run --quiet guardhub install hub://root-guard",
		"run --quiet guardhub install hub://pkg-a-guard",
		"run --quiet guardhub install hub://pkg-b-guard",
	}
	if len(calls) != len(want) {
		t.Fatalf("got calls %q, want %q", calls, want)
	}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: got %q, want %q", i, calls[i], w)
		}
	}
}

func TestSync_packageSelectionAndExclusion(t *testing.T) {
	hubToken(t, "tok")
	pmLog := testutil.StubExecutable(t, "pm")
	path := testutil.WorkspaceFixture(t)

	_, err := execCommand(t, "sync", "--manifest", path,
		"--all-packages", "--no-install-package", "pkg-b")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.StubCalls(t, pmLog)
	want := []string{
		"sync --quiet " + testIndexFlags + " --all-packages --no-install-package pkg-b",
		"run --quiet guardhub install hub://root-guard",
		"run --quiet guardhub install hub://pkg-a-guard",
	}
	if len(calls) != len(want) {
		t.Fatalf("got calls %q, want %q", calls, want)
	}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: got %q, want %q", i, calls[i], w)
		}
	}
}

func TestSync_noInstallProject(t *testing.T) {
	hubToken(t, "tok")
	pmLog := testutil.StubExecutable(t, "pm")
	path := testutil.WorkspaceFixture(t)

	_, err := execCommand(t, "sync", "--manifest", path,
		"--no-install-project", "--package", "pkg-a")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.StubCalls(t, pmLog)
	want := []string{
		"sync --quiet " + testIndexFlags + " --no-install-project --package pkg-a",
		"run --quiet guardhub install hub://pkg-a-guard",
	}
	if len(calls) != len(want) {
		t.Fatalf("got calls %q, want %q", calls, want)
	}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: got %q, want %q", i, calls[i], w)
		}
	}
}

func TestSync_forwardsExtraArguments(t *testing.T) {
	hubToken(t, "tok")
	pmLog := testutil.StubExecutable(t, "pm")
	path := testutil.WorkspaceFixture(t)

	_, err := execCommand(t, "sync", "--manifest", path, "--", "--frozen")
	if err != nil {
		t.Fatal(err)
	}

	calls := testutil.StubCalls(t, pmLog)
	if len(calls) == 0 || calls[0] != "sync --quiet "+testIndexFlags+" --frozen" {
		t.Errorf("got calls %q", calls)
	}
}
