package ui

import (
	"strings"
	"testing"
)

func TestTable_alignsColumns(t *testing.T) {
	var buf strings.Builder
	tbl := NewTable(&buf, "URI", "VERSION")
	tbl.Row("hub://ns/check", "v1.0.0")
	tbl.Row("hub://other", "(unpinned)")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "URI") {
		t.Errorf("missing header: %q", lines[0])
	}
	col := strings.Index(lines[1], "v1.0.0")
	if col == -1 || strings.Index(lines[2], "(unpinned)") != col {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}
