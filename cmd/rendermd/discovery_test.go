package main

import (
	"errors"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

// newDocsTree creates a small tree of Markdown and non-Markdown files.
func newDocsTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "a.md", "# A")
	writeTestFile(t, dir, "notes.txt", "plain")
	writeTestFile(t, dir, "sub/b.markdown", "# B")
	writeTestFile(t, dir, "sub/deep/c.md", "# C")
	return dir
}

// ---------------------------------------------------------------------------
// TestDiscoverInputs - Argument expansion
// ---------------------------------------------------------------------------

func TestDiscoverInputs(t *testing.T) {
	t.Parallel()

	dir := newDocsTree(t)
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "sub", "b.markdown")
	c := filepath.Join(dir, "sub", "deep", "c.md")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"plain file", []string{a}, []string{a}},
		{"missing file kept", []string{filepath.Join(dir, "gone.md")}, []string{filepath.Join(dir, "gone.md")}},
		{"directory is recursive", []string{dir}, []string{a, b, c}},
		{"single star glob", []string{filepath.Join(dir, "*.md")}, []string{a}},
		{"double star glob", []string{filepath.Join(dir, "**", "*.md")}, []string{a, c}},
		{"duplicates dropped", []string{a, dir, a}, []string{a, b, c}},
		{"no args", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := discoverInputs(tt.args)
			if err != nil {
				t.Fatalf("discoverInputs() error = %v", err)
			}
			sort.Strings(got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("discoverInputs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestDiscoverInputs_Errors(t *testing.T) {
	t.Parallel()

	dir := newDocsTree(t)
	empty := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unclosed bracket", []string{filepath.Join(dir, "[a.md")}, ErrInvalidPattern},
		{"glob without matches", []string{filepath.Join(dir, "*.rst")}, ErrNoMatches},
		{"glob matching only other files", []string{filepath.Join(dir, "*.txt")}, ErrNoMatches},
		{"directory without markdown", []string{empty}, ErrNoMatches},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := discoverInputs(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("discoverInputs() error = %v, want %v", err, tt.wantErr)
			}
			if exitCodeFor(err) != ExitUsage {
				t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
			}
		})
	}
}

func TestHasGlobMeta(t *testing.T) {
	t.Parallel()

	for arg, want := range map[string]bool{
		"notes.md":       false,
		"docs/*.md":      true,
		"docs/**":        true,
		"file?.md":       true,
		"[ab].md":        true,
		"{a,b}.md":       true,
		"/abs/path.md":   false,
		"dir/with-dash/": false,
	} {
		if got := hasGlobMeta(arg); got != want {
			t.Errorf("hasGlobMeta(%q) = %v, want %v", arg, got, want)
		}
	}
}
