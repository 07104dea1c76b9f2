package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MathDelimiter marks TeX in the Markdown source.
const MathDelimiter = "$"

var displayFence = []byte("$$")

// Node kinds for TeX spans.
var (
	KindMathInline = ast.NewNodeKind("MathInline")
	KindMathBlock  = ast.NewNodeKind("MathBlock")
)

// MathInline is a $...$ or $$...$$ span inside a paragraph. Its source is
// kept verbatim so emphasis and escapes do not rewrite the TeX.
type MathInline struct {
	ast.BaseInline

	Display bool
	Segment text.Segment // TeX without delimiters
}

// Kind implements ast.Node.
func (n *MathInline) Kind() ast.NodeKind { return KindMathInline }

// Dump implements ast.Node.
func (n *MathInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"TeX": string(n.Segment.Value(source)),
	}, nil)
}

// MathBlock is display math fenced by lines holding only $$.
type MathBlock struct {
	ast.BaseBlock
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind { return KindMathBlock }

// IsRaw implements ast.Node.
func (n *MathBlock) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type mathInlineParser struct{}

func (mathInlineParser) Trigger() []byte { return []byte{'$'} }

// Parse recognises $$tex$$ and $tex$. A single-dollar span must not start
// with a space, must not end with a space, and its closing dollar must not
// be followed by a digit, so "costs $5 and $10" stays text.
func (mathInlineParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if len(line) < 2 {
		return nil
	}

	display := line[1] == '$'
	delim := 1
	if display {
		delim = 2
	}
	body := line[delim:]

	var end int
	if display {
		end = bytes.Index(body, displayFence)
	} else {
		end = closingDollar(body)
	}
	if end <= 0 {
		return nil
	}

	node := &MathInline{
		Display: display,
		Segment: text.NewSegment(seg.Start+delim, seg.Start+delim+end),
	}
	block.Advance(delim + end + delim)
	return node
}

func closingDollar(body []byte) int {
	if len(body) == 0 || util.IsSpace(body[0]) {
		return -1
	}
	for i := 1; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '$':
			if util.IsSpace(body[i-1]) {
				continue
			}
			if i+1 < len(body) && body[i+1] >= '0' && body[i+1] <= '9' {
				continue
			}
			return i
		}
	}
	return -1
}

type mathBlockParser struct{}

func (mathBlockParser) Trigger() []byte { return []byte{'$'} }

func (mathBlockParser) Open(_ ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || !bytes.HasPrefix(line[pos:], displayFence) {
		return nil, parser.NoChildren
	}
	if !util.IsBlank(line[pos+len(displayFence):]) {
		return nil, parser.NoChildren
	}
	return &MathBlock{}, parser.NoChildren
}

func (mathBlockParser) Continue(node ast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if w, pos := util.IndentWidth(line, 0); w < 4 {
		rest := line[pos:]
		if bytes.HasPrefix(rest, displayFence) && util.IsBlank(rest[len(displayFence):]) {
			reader.Advance(segment.Stop - segment.Start - segment.Padding)
			return parser.Close
		}
	}

	node.Lines().Append(segment)
	reader.Advance(segment.Len() - 1)
	return parser.Continue | parser.NoChildren
}

func (mathBlockParser) Close(ast.Node, text.Reader, parser.Context) {}

func (mathBlockParser) CanInterruptParagraph() bool { return true }

func (mathBlockParser) CanAcceptIndentedLine() bool { return false }

type mathRenderer struct{}

func (mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMathInline, renderMathInline)
	reg.Register(KindMathBlock, renderMathBlock)
}

func renderMathInline(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	node := n.(*MathInline)
	delim := MathDelimiter
	if node.Display {
		delim = string(displayFence)
	}
	_, _ = w.WriteString(delim)
	_, _ = w.Write(util.EscapeHTML(node.Segment.Value(source)))
	_, _ = w.WriteString(delim)
	return ast.WalkSkipChildren, nil
}

func renderMathBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<div class=\"math-display\">$$\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(seg.Value(source)))
	}
	_, _ = w.WriteString("$$</div>\n")
	return ast.WalkSkipChildren, nil
}

// mathExtension keeps TeX spans intact for the client-side renderer.
type mathExtension struct{}

func (mathExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(mathBlockParser{}, 700)),
		parser.WithInlineParsers(util.Prioritized(mathInlineParser{}, 150)),
	)
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(mathRenderer{}, 100),
	))
}
