package pipeline

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-rendermd/internal/assets"
)

// Theme values understood by the composer.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// PageOptions is the slice of the render configuration the composer reads.
type PageOptions struct {
	Theme           string
	SyntaxHighlight bool
	CopyButton      bool
	CSS             string // extra stylesheet, appended last
}

// PageInput is everything needed to compose one document.
type PageInput struct {
	Content    string // rendered Markdown fragment
	TOC        string // RenderTOC output, may be empty
	Title      string // raw, escaped by the composer
	Options    PageOptions
	HasMath    bool // trusted, not re-derived
	HasDiagram bool // trusted, not re-derived
}

// pageAssets holds the stylesheets and scripts a page may embed.
type pageAssets struct {
	themeLight     string
	themeDark      string
	base           string
	copyButtonCSS  string
	math           string
	copyButtonJS   string
	tocScroll      string
	syntaxLightCSS string
	syntaxDarkCSS  string
}

// Composer assembles complete HTML documents. All assets are loaded when
// the Composer is built, so Compose itself cannot fail.
type Composer struct {
	assets pageAssets
}

// NewComposer loads every page asset through loader. A nil loader uses the
// embedded assets.
func NewComposer(loader assets.AssetLoader) (*Composer, error) {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}

	var a pageAssets
	styles := []struct {
		name string
		dst  *string
	}{
		{assets.StyleThemeLight, &a.themeLight},
		{assets.StyleThemeDark, &a.themeDark},
		{assets.StyleBase, &a.base},
		{assets.StyleCopyButton, &a.copyButtonCSS},
		{assets.StyleMath, &a.math},
	}
	for _, s := range styles {
		content, err := loader.LoadStyle(s.name)
		if err != nil {
			return nil, fmt.Errorf("loading style %q: %w", s.name, err)
		}
		*s.dst = content
	}

	scripts := []struct {
		name string
		dst  *string
	}{
		{assets.ScriptCopyButton, &a.copyButtonJS},
		{assets.ScriptTOCScroll, &a.tocScroll},
	}
	for _, s := range scripts {
		content, err := loader.LoadScript(s.name)
		if err != nil {
			return nil, fmt.Errorf("loading script %q: %w", s.name, err)
		}
		*s.dst = content
	}

	var err error
	if a.syntaxLightCSS, err = SyntaxStylesheet(SyntaxStyleLight); err != nil {
		return nil, err
	}
	if a.syntaxDarkCSS, err = SyntaxStylesheet(SyntaxStyleDark); err != nil {
		return nil, err
	}

	return &Composer{assets: a}, nil
}

// Compose returns the complete document for in. The result depends only on
// in: the same input always yields the same bytes.
func (c *Composer) Compose(in PageInput) string {
	opts := in.Options

	var buf strings.Builder
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"UTF-8\">\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	buf.WriteString("<title>")
	buf.WriteString(html.EscapeString(in.Title))
	buf.WriteString("</title>\n")

	buf.WriteString(c.themeStyles(opts.Theme))
	buf.WriteString(c.baseStyles())
	if opts.CopyButton {
		buf.WriteString(c.copyButtonStyles())
	}
	if opts.SyntaxHighlight {
		buf.WriteString(c.syntaxStyles(opts.Theme))
	}
	if in.HasMath {
		buf.WriteString(c.mathStyles())
	}
	buf.WriteString(userStyles(opts.CSS))

	buf.WriteString("</head>\n<body>\n<div class=\"container\">\n")
	if in.TOC != "" {
		buf.WriteString(in.TOC)
		buf.WriteByte('\n')
	}
	buf.WriteString("<main class=\"content\">\n")
	buf.WriteString(in.Content)
	buf.WriteString("\n</main>\n</div>\n")

	if opts.CopyButton {
		buf.WriteString(c.copyButtonScript())
	}
	if in.HasDiagram {
		buf.WriteString(diagramScript(opts.Theme))
	}
	if in.HasMath {
		buf.WriteString(mathScripts())
	}
	buf.WriteString(c.tocScrollScript())

	buf.WriteString("</body>\n</html>\n")
	return buf.String()
}
