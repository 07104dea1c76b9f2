package pipeline

import (
	"bufio"
	"strings"
	"testing"

	admonitions "github.com/stefanfritsch/goldmark-admonitions"
)

// ---------------------------------------------------------------------------
// TestRenderCallout - Callout wrapper markup
// ---------------------------------------------------------------------------

func TestRenderCallout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *admonitions.Admonition
		open string
	}{
		{
			name: "class and title",
			node: &admonitions.Admonition{AdmonitionClass: []byte("warning"), Title: []byte("Careful")},
			open: "<div class=\"admonition warning\">\n<p class=\"admonition-title\">Careful</p>\n",
		},
		{
			name: "no class falls back to note",
			node: &admonitions.Admonition{},
			open: "<div class=\"admonition note\">\n",
		},
		{
			name: "quoted title unwrapped",
			node: &admonitions.Admonition{AdmonitionClass: []byte("note"), Title: []byte(`"Heads up"`)},
			open: "<div class=\"admonition note\">\n<p class=\"admonition-title\">Heads up</p>\n",
		},
		{
			name: "title escaped",
			node: &admonitions.Admonition{AdmonitionClass: []byte("tip"), Title: []byte("<b>&</b>")},
			open: "<div class=\"admonition tip\">\n<p class=\"admonition-title\">&lt;b&gt;&amp;&lt;/b&gt;</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			w := bufio.NewWriter(&sb)
			if _, err := renderCallout(w, nil, tt.node, true); err != nil {
				t.Fatal(err)
			}
			if _, err := renderCallout(w, nil, tt.node, false); err != nil {
				t.Fatal(err)
			}
			_ = w.Flush()

			if want := tt.open + "</div>\n"; sb.String() != want {
				t.Errorf("renderCallout() =\n%q\nwant\n%q", sb.String(), want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCallouts_Markdown - Callouts through the converter
// ---------------------------------------------------------------------------

func TestCallouts_Markdown(t *testing.T) {
	t.Parallel()

	got := mustConvert(t, EngineOptions{}, "!!! note \"Heads up\"\nBody text.\n!!!\n\nAfter.\n")

	for _, want := range []string{
		`<div class="admonition note">`,
		`<p class="admonition-title">Heads up</p>`,
		"Body text.",
		"<p>After.</p>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "&quot;") {
		t.Errorf("title kept its quotes:\n%s", got)
	}
	if strings.Index(got, "</div>") > strings.Index(got, "<p>After.</p>") {
		t.Errorf("callout should close before the following paragraph:\n%s", got)
	}
}

func TestCallouts_MarkdownNotCallouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "shouting line",
			md:   "!!! BIG NEWS !!!\n\nFirst para.\n\n## Next\n\nMore.\n",
			want: `<h2 id="next">Next</h2>`,
		},
		{
			name: "marker without closing line",
			md:   "!!! note \"Heads up\"\n    Body text.\n\n## Next\n",
			want: `<h2 id="next">Next</h2>`,
		},
		{
			name: "bang run inside a sentence",
			md:   "Just a paragraph with !!! inside.\n",
			want: "<p>Just a paragraph with !!! inside.</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mustConvert(t, EngineOptions{}, tt.md)
			if strings.Contains(got, "admonition") {
				t.Errorf("text became a callout:\n%s", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestHasCalloutClose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rest string
		want bool
	}{
		{rest: "", want: false},
		{rest: "body\n!!!\n", want: true},
		{rest: "body\n  !!!  ", want: true},
		{rest: "body\n!!! tip\n", want: false},
		{rest: "!!!!\n", want: false},
	}

	for _, tt := range tests {
		if got := hasCalloutClose([]byte(tt.rest)); got != tt.want {
			t.Errorf("hasCalloutClose(%q) = %v, want %v", tt.rest, got, tt.want)
		}
	}
}
