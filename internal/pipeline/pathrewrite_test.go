package pipeline

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteRelativeURLs - Source-relative resources
// ---------------------------------------------------------------------------

func TestRewriteRelativeURLs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileURL := func(rel, query, frag string) string {
		return pathToFileURL(filepath.Join(dir, filepath.FromSlash(rel)), query, frag)
	}

	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{
			name:     "image",
			fragment: `<p><img src="img/a.png" alt="a"></p>`,
			want:     []string{`src="` + fileURL("img/a.png", "", "") + `"`, `alt="a"`},
		},
		{
			name:     "link with query and fragment",
			fragment: `<p><a href="other.md?x=1#sec">o</a></p>`,
			want:     []string{`href="` + fileURL("other.md", "x=1", "sec") + `"`},
		},
		{
			name:     "parent directory",
			fragment: `<p><a href="../up.html">u</a></p>`,
			want:     []string{`href="` + fileURL("../up.html", "", "") + `"`},
		},
		{
			name:     "mixed with absolute",
			fragment: `<p><img src="x.png"><a href="https://example.com/">e</a></p>`,
			want:     []string{fileURL("x.png", "", ""), `href="https://example.com/"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativeURLs(tt.fragment, dir)
			if err != nil {
				t.Fatalf("RewriteRelativeURLs() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestRewriteRelativeURLs_Unchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		fragment string
		dir      string
	}{
		{name: "no source dir", fragment: `<img src="a.png">`, dir: ""},
		{name: "no url attributes", fragment: "<p>plain &amp; simple</p>\n", dir: dir},
		{name: "absolute url", fragment: `<a href="https://example.com">x</a>`, dir: dir},
		{name: "anchor", fragment: `<a href="#top">top</a>`, dir: dir},
		{name: "absolute path", fragment: `<img src="/srv/a.png">`, dir: dir},
		{name: "protocol relative", fragment: `<img src="//cdn.example.com/a.png">`, dir: dir},
		{name: "mailto", fragment: `<a href="mailto:me@example.com">m</a>`, dir: dir},
		{name: "data uri", fragment: `<img src="data:image/png;base64,AAAA">`, dir: dir},
		{name: "unrelated element", fragment: `<div data-src="a.png" title="href=x">d</div>`, dir: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativeURLs(tt.fragment, tt.dir)
			if err != nil {
				t.Fatalf("RewriteRelativeURLs() error = %v", err)
			}
			if got != tt.fragment {
				t.Errorf("RewriteRelativeURLs() = %q, want input unchanged", got)
			}
		})
	}
}

func TestPathToFileURL(t *testing.T) {
	t.Parallel()

	got := pathToFileURL("/home/me/my docs/a.png", "", "")
	if got != "file:///home/me/my%20docs/a.png" {
		t.Errorf("pathToFileURL() = %q", got)
	}

	got = pathToFileURL("/a/b.md", "q=1", "frag")
	if got != "file:///a/b.md?q=1#frag" {
		t.Errorf("pathToFileURL() = %q", got)
	}
}
