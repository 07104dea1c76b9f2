package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

const byteOrderMark = "\uFEFF"

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes Markdown source before conversion.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a leading byte order mark and converts line
// endings to \n. On a cancelled context the content is returned unchanged.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// HasMath reports whether source contains a math delimiter.
func HasMath(source string) bool {
	return strings.Contains(source, MathDelimiter)
}

// HasDiagram reports whether a rendered fragment contains a diagram block.
func HasDiagram(fragment string) bool {
	return strings.Contains(fragment, DiagramMarker)
}
