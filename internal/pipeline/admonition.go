package pipeline

import (
	"bytes"
	"regexp"

	admonitions "github.com/stefanfritsch/goldmark-admonitions"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// calloutOpenPattern accepts "!!! note Title" and "!!!note": a lowercase
// class right after the marker. Lines such as "!!! BIG NEWS !!!" stay text.
var calloutOpenPattern = regexp.MustCompile(`^ {0,3}!!! ?[a-z][a-z0-9_-]*(?:[ \t]|\r?\n|$)`)

var calloutFence = []byte("!!!")

// calloutParser opens a callout only when the class is well formed and a
// closing !!! line follows, so an unclosed marker cannot swallow the rest
// of the document.
type calloutParser struct {
	parser.BlockParser
}

func (p calloutParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, seg := reader.PeekLine()
	if !calloutOpenPattern.Match(line) || !hasCalloutClose(reader.Source()[seg.Stop:]) {
		return nil, parser.NoChildren
	}
	return p.BlockParser.Open(parent, reader, pc)
}

// hasCalloutClose reports whether rest holds a line made of !!! alone.
func hasCalloutClose(rest []byte) bool {
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		if bytes.Equal(bytes.TrimSpace(line), calloutFence) {
			return true
		}
	}
	return false
}

// calloutTitle drops one pair of surrounding double quotes.
func calloutTitle(title []byte) []byte {
	if len(title) >= 2 && title[0] == '"' && title[len(title)-1] == '"' {
		return title[1 : len(title)-1]
	}
	return title
}

// defaultCalloutClass is used when a callout names no class.
const defaultCalloutClass = "note"

// calloutRenderer renders "!!! note" ... "!!!" blocks as
// <div class="admonition note">, styled by base.css.
type calloutRenderer struct{}

func (calloutRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(admonitions.KindAdmonition, renderCallout)
}

func renderCallout(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*admonitions.Admonition)
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}

	class := n.AdmonitionClass
	if len(class) == 0 {
		class = []byte(defaultCalloutClass)
	}
	_, _ = w.WriteString(`<div class="admonition `)
	_, _ = w.Write(util.EscapeHTML(class))
	_, _ = w.WriteString("\">\n")
	if title := calloutTitle(n.Title); len(title) > 0 {
		_, _ = w.WriteString(`<p class="admonition-title">`)
		_, _ = w.Write(util.EscapeHTML(title))
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

// calloutExtension enables callout blocks.
type calloutExtension struct{}

func (calloutExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(calloutParser{admonitions.NewAdmonitionParser()}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(calloutRenderer{}, 100),
	))
}
