// Where: internal/resolver/marker_test.go
// What: Tests for marker parsing, validation, and matching.
// Why: Keep marker semantics confined to a single directory.
package resolver

import (
	"path/filepath"
	"testing"
)

func TestParseMarker(t *testing.T) {
	cases := []struct {
		input   string
		kind    MarkerKind
		pattern string
		wantErr bool
	}{
		{input: "index.md", kind: MarkerFile, pattern: "index.md"},
		{input: "  index.md ", kind: MarkerFile, pattern: "index.md"},
		{input: "*.csproj", kind: MarkerGlob, pattern: "*.csproj"},
		{input: "doc?.txt", kind: MarkerGlob, pattern: "doc?.txt"},
		{input: "{a,b}.proj", kind: MarkerGlob, pattern: "{a,b}.proj"},
		{input: "", wantErr: true},
		{input: "[bad", wantErr: true},
		{input: ".", wantErr: true},
		{input: "..", wantErr: true},
		{input: "docs/index.md", wantErr: true},
		{input: "**/*.proj", wantErr: true},
		{input: "**", wantErr: true},
		{input: "src/*.proj", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseMarker(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseMarker(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMarker(%q): %v", tc.input, err)
		}
		if got.Kind != tc.kind || got.Pattern != tc.pattern {
			t.Fatalf("ParseMarker(%q) = %+v", tc.input, got)
		}
	}
}

func TestMarkerMatchesGlobIgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	writeMarker(t, dir, "readme.txt")

	if _, ok, err := Glob("*.proj").Matches(dir); err != nil || ok {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}

	writeMarker(t, dir, "one.proj")
	writeMarker(t, dir, "two.proj")
	entry, ok, err := Glob("*.proj").Matches(dir)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if entry != "one.proj" {
		t.Fatalf("expected one.proj, got %q", entry)
	}
}

func TestMarkerMatchesDirectoryEntry(t *testing.T) {
	base := t.TempDir()
	makeTree(t, base, ".git")

	entry, ok, err := File(".git").Matches(base)
	if err != nil || !ok {
		t.Fatalf("expected directory marker match, got ok=%v err=%v", ok, err)
	}
	if filepath.Join(base, entry) != filepath.Join(base, ".git") {
		t.Fatalf("unexpected entry %q", entry)
	}
}

func TestMarkerString(t *testing.T) {
	if got := Glob("*.csproj").String(); got != `glob "*.csproj"` {
		t.Fatalf("unexpected string %q", got)
	}
	if got := File("index.md").String(); got != `file "index.md"` {
		t.Fatalf("unexpected string %q", got)
	}
}
