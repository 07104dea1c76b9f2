package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DiagramLanguage is the fence language rendered as a client-side diagram.
const DiagramLanguage = "mermaid"

// DiagramMarker is present in rendered HTML iff it contains a diagram.
const DiagramMarker = `class="mermaid"`

// KindDiagramBlock is the node kind of a diagram fence.
var KindDiagramBlock = ast.NewNodeKind("DiagramBlock")

// DiagramBlock is a fenced code block whose source is handed to the
// browser-side diagram renderer unchanged.
type DiagramBlock struct {
	ast.BaseBlock
}

// Kind implements ast.Node.
func (n *DiagramBlock) Kind() ast.NodeKind { return KindDiagramBlock }

// IsRaw implements ast.Node.
func (n *DiagramBlock) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *DiagramBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// diagramTransformer swaps mermaid fences for DiagramBlock nodes before
// rendering, so the highlighter never sees them.
type diagramTransformer struct{}

func (diagramTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var fences []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fence, ok := n.(*ast.FencedCodeBlock); ok && string(fence.Language(source)) == DiagramLanguage {
			fences = append(fences, fence)
		}
		return ast.WalkContinue, nil
	})

	for _, fence := range fences {
		block := &DiagramBlock{}
		block.SetLines(fence.Lines())
		parent := fence.Parent()
		parent.ReplaceChild(parent, fence, block)
	}
}

type diagramRenderer struct{}

func (diagramRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindDiagramBlock, renderDiagram)
}

func renderDiagram(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<pre class="mermaid">`)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(seg.Value(source)))
	}
	_, _ = w.WriteString("</pre>\n")
	return ast.WalkSkipChildren, nil
}

// diagramExtension renders ```mermaid fences as <pre class="mermaid">.
type diagramExtension struct{}

func (diagramExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(diagramTransformer{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(diagramRenderer{}, 100),
	))
}
