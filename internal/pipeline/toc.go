package pipeline

import (
	"strconv"
	"strings"
)

// TOCTitle is the heading shown above the table of contents.
const TOCTitle = "Table of Contents"

// tocIndentPx is the left padding added per level below h2.
const tocIndentPx = 20

// RenderTOC renders entries as a navigation block, one link per entry in
// input order, indented by heading depth. No entries gives "".
//
// IDs and texts are embedded as they came from the rendered fragment, where
// they are already escaped.
func RenderTOC(entries []OutlineEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc"><div class="toc-title">`)
	buf.WriteString(TOCTitle)
	buf.WriteString(`</div><ul>`)

	for _, e := range entries {
		buf.WriteString(`<li style="padding-left: `)
		buf.WriteString(strconv.Itoa((e.Level - 2) * tocIndentPx))
		buf.WriteString(`px"><a href="#`)
		buf.WriteString(e.ID)
		buf.WriteString(`">`)
		buf.WriteString(e.Text)
		buf.WriteString(`</a></li>`)
	}

	buf.WriteString(`</ul></nav>`)
	return buf.String()
}
