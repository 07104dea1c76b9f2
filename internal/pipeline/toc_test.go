package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRenderTOC - Navigation block rendering
// ---------------------------------------------------------------------------

func TestRenderTOC_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTOC(nil); got != "" {
		t.Errorf("RenderTOC(nil) = %q, want empty", got)
	}
	if got := RenderTOC([]OutlineEntry{}); got != "" {
		t.Errorf("RenderTOC([]) = %q, want empty", got)
	}
}

func TestRenderTOC_Exact(t *testing.T) {
	t.Parallel()

	got := RenderTOC([]OutlineEntry{
		{ID: "intro", Text: "Intro", Level: 2},
		{ID: "setup", Text: "Setup &amp; run", Level: 3},
	})

	want := `<nav class="toc"><div class="toc-title">Table of Contents</div><ul>` +
		`<li style="padding-left: 0px"><a href="#intro">Intro</a></li>` +
		`<li style="padding-left: 20px"><a href="#setup">Setup &amp; run</a></li>` +
		`</ul></nav>`
	if got != want {
		t.Errorf("RenderTOC() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTOC_IndentByLevel(t *testing.T) {
	t.Parallel()

	entries := []OutlineEntry{
		{ID: "l2", Text: "2", Level: 2},
		{ID: "l3", Text: "3", Level: 3},
		{ID: "l4", Text: "4", Level: 4},
		{ID: "l5", Text: "5", Level: 5},
		{ID: "l6", Text: "6", Level: 6},
		{ID: "back", Text: "back", Level: 2},
	}

	got := RenderTOC(entries)

	padding := regexp.MustCompile(`padding-left: (\d+)px`).FindAllStringSubmatch(got, -1)
	if len(padding) != len(entries) {
		t.Fatalf("found %d entries, want %d", len(padding), len(entries))
	}
	for i, m := range padding {
		px, _ := strconv.Atoi(m[1])
		if want := (entries[i].Level - 2) * 20; px != want {
			t.Errorf("entry %d (level %d) indent = %dpx, want %dpx", i, entries[i].Level, px, want)
		}
	}
}

func TestRenderTOC_KeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	got := RenderTOC([]OutlineEntry{
		{ID: "b", Text: "Same", Level: 3},
		{ID: "a", Text: "Same", Level: 2},
		{ID: "b", Text: "Same", Level: 3},
	})

	if n := strings.Count(got, "<li "); n != 3 {
		t.Errorf("got %d entries, want 3", n)
	}
	first := strings.Index(got, `href="#b"`)
	second := strings.Index(got, `href="#a"`)
	if first < 0 || second < 0 || first > second {
		t.Errorf("entries reordered: %s", got)
	}
}
