package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// EngineOptions selects the goldmark extensions of one converter.
type EngineOptions struct {
	SyntaxHighlight bool // chroma classes on fenced code
	Mermaid         bool // mermaid fences become <pre class="mermaid">
	Math            bool // $...$ spans pass through verbatim
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
// Each converter owns its engine, so converters built with different
// options never share extension state.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes and
// the extensions selected by opts.
func NewGoldmarkConverter(opts EngineOptions) *GoldmarkConverter {
	extenders := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
		calloutExtension{}, // !!! note callouts
	}
	// Diagram fences are swapped out before the highlighter sees them.
	if opts.Mermaid {
		extenders = append(extenders, diagramExtension{})
	}
	if opts.Math {
		extenders = append(extenders, mathExtension{})
	}
	if opts.SyntaxHighlight {
		extenders = append(extenders, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // styled by SyntaxStylesheet
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // ids feed the outline
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // single newlines become <br>
			// WithUnsafe is not set: raw HTML in the source is omitted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
