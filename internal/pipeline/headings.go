package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// OutlineEntry is one heading of a rendered fragment.
type OutlineEntry struct {
	ID    string // anchor identifier, never empty
	Text  string // inner markup with tags removed; entities stay encoded
	Level int    // 2 through 6
}

// openHeadingPattern matches an h2-h6 opening tag.
// Captures: 1=level, 2=attribute list (may be empty).
var openHeadingPattern = regexp.MustCompile(`(?i)<h([2-6])(\s[^>]*)?>`)

// attrPattern matches one attribute of a tag. Matching left to right
// consumes quoted values whole, so text inside them is never read as an
// attribute name.
// Captures: 1=name, 2=double-quoted, 3=single-quoted, 4=unquoted value.
var attrPattern = regexp.MustCompile(`([^\s"'=<>/]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>]+)))?`)

// closeHeadingPatterns holds one closing-tag pattern per level, indexed by level.
var closeHeadingPatterns = [7]*regexp.Regexp{
	2: regexp.MustCompile(`(?i)</h2\s*>`),
	3: regexp.MustCompile(`(?i)</h3\s*>`),
	4: regexp.MustCompile(`(?i)</h4\s*>`),
	5: regexp.MustCompile(`(?i)</h5\s*>`),
	6: regexp.MustCompile(`(?i)</h6\s*>`),
}

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// ExtractOutline scans an HTML fragment for h2-h6 headings that carry an id
// and returns them in document order. Headings without an id are skipped.
// A heading ends at the first closing tag of its own level.
func ExtractOutline(fragment string) []OutlineEntry {
	var entries []OutlineEntry

	pos := 0
	for pos < len(fragment) {
		open := openHeadingPattern.FindStringSubmatchIndex(fragment[pos:])
		if open == nil {
			break
		}
		tagEnd := pos + open[1]
		level, _ := strconv.Atoi(fragment[pos+open[2] : pos+open[3]])

		closing := closeHeadingPatterns[level].FindStringIndex(fragment[tagEnd:])
		if closing == nil {
			// Unterminated heading: nothing after it can close it either.
			pos = tagEnd
			continue
		}

		var attrs string
		if open[4] >= 0 {
			attrs = fragment[pos+open[4] : pos+open[5]]
		}
		id := headingID(attrs)
		if id == "" {
			pos = tagEnd
			continue
		}

		inner := fragment[tagEnd : tagEnd+closing[0]]
		pos = tagEnd + closing[1]
		entries = append(entries, OutlineEntry{
			ID:    id,
			Text:  htmlTagPattern.ReplaceAllString(inner, ""),
			Level: level,
		})
	}

	return entries
}

// headingID returns the value of the first id attribute, or "".
func headingID(attrs string) string {
	for _, m := range attrPattern.FindAllStringSubmatch(attrs, -1) {
		if strings.EqualFold(m[1], "id") {
			return m[2] + m[3] + m[4]
		}
	}
	return ""
}
