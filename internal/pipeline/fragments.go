package pipeline

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Chroma styles used for code blocks.
const (
	SyntaxStyleLight = "github"
	SyntaxStyleDark  = "github-dark"
)

// CDN locations of the client-side renderers.
const (
	katexVersion    = "0.16.9"
	katexBaseURL    = "https://cdn.jsdelivr.net/npm/katex@" + katexVersion + "/dist"
	mermaidESMURL   = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.esm.min.mjs"
	darkSchemeQuery = "(prefers-color-scheme: dark)"
)

var (
	syntaxCSSMu    sync.Mutex
	syntaxCSSCache = map[string]string{}
)

// SyntaxStylesheet returns the CSS for a chroma style, matching the class
// names the highlighter emits. Results are cached per style.
func SyntaxStylesheet(styleName string) (string, error) {
	syntaxCSSMu.Lock()
	defer syntaxCSSMu.Unlock()

	if css, ok := syntaxCSSCache[styleName]; ok {
		return css, nil
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(styleName)); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", styleName, err)
	}

	css := buf.String()
	syntaxCSSCache[styleName] = css
	return css, nil
}

// styleBlock wraps css in a <style> element.
func styleBlock(css string) string {
	return "<style>\n" + sanitizeCSS(css) + "\n</style>\n"
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func scriptBlock(js string) string {
	return "<script>\n" + js + "\n</script>\n"
}

// themeStyles emits the color variables. Light values are always present;
// dark values override them unconditionally for "dark" and under the
// client's color-scheme preference for "auto".
func (c *Composer) themeStyles(theme string) string {
	switch theme {
	case ThemeDark:
		return styleBlock(c.assets.themeLight + "\n" + c.assets.themeDark)
	case ThemeAuto:
		return styleBlock(c.assets.themeLight + "\n@media " + darkSchemeQuery + " {\n" + c.assets.themeDark + "}")
	default:
		return styleBlock(c.assets.themeLight)
	}
}

func (c *Composer) baseStyles() string {
	return styleBlock(c.assets.base)
}

func (c *Composer) copyButtonStyles() string {
	return styleBlock(c.assets.copyButtonCSS)
}

// syntaxStyles picks one stylesheet at render time: the dark one for both
// "dark" and "auto", since it cannot follow the client preference.
func (c *Composer) syntaxStyles(theme string) string {
	if theme == ThemeDark || theme == ThemeAuto {
		return styleBlock(c.assets.syntaxDarkCSS)
	}
	return styleBlock(c.assets.syntaxLightCSS)
}

func (c *Composer) mathStyles() string {
	return `<link rel="stylesheet" href="` + katexBaseURL + `/katex.min.css">` + "\n" +
		styleBlock(c.assets.math)
}

func mathScripts() string {
	return `<script defer src="` + katexBaseURL + `/katex.min.js"></script>` + "\n" +
		`<script defer src="` + katexBaseURL + `/contrib/auto-render.min.js" onload="renderMathInElement(document.body, {
  delimiters: [
    {left: '$$', right: '$$', display: true},
    {left: '$', right: '$', display: false}
  ]
});"></script>` + "\n"
}

// diagramScript loads Mermaid as an ES module. Its theme follows the page:
// fixed for light and dark, decided by the client for auto.
func diagramScript(theme string) string {
	var themeExpr string
	switch theme {
	case ThemeDark:
		themeExpr = "'dark'"
	case ThemeLight:
		themeExpr = "'default'"
	default:
		themeExpr = "window.matchMedia('" + darkSchemeQuery + "').matches ? 'dark' : 'default'"
	}

	return "<script type=\"module\">\n" +
		"import mermaid from '" + mermaidESMURL + "';\n" +
		"mermaid.initialize({\n" +
		"  startOnLoad: true,\n" +
		"  theme: " + themeExpr + "\n" +
		"});\n" +
		"</script>\n"
}

func (c *Composer) copyButtonScript() string {
	return scriptBlock(c.assets.copyButtonJS)
}

// tocScrollScript is always emitted; it does nothing without .toc links.
func (c *Composer) tocScrollScript() string {
	return scriptBlock(c.assets.tocScroll)
}

func userStyles(css string) string {
	if strings.TrimSpace(css) == "" {
		return ""
	}
	return styleBlock(css)
}
