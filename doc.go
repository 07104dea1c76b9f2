// Package rendermd renders Markdown documents as self-contained, styled HTML
// pages and shows them in a browser.
//
// # Quick Start
//
// Create a renderer and render markdown:
//
//	r, err := rendermd.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, rendermd.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "hello.md",
//	    Options:  rendermd.DefaultOptions(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := rendermd.WriteTemp(result.HTML, "hello.md")
//	err = rendermd.OpenInBrowser(path)
//
// The result holds the complete page (result.HTML), the heading outline used
// for the table of contents (result.Outline), and which client-side renderers
// the page loads (result.HasMath, result.HasDiagram).
//
// # Rendering Pipeline
//
// A render call goes through these stages:
//
//  1. Markdown preprocessing (byte order mark, line endings)
//  2. Markdown to HTML conversion via Goldmark (GFM, footnotes, highlighting,
//     diagram and math passthrough)
//  3. Relative resource paths rewritten to file:// URLs (when SourceDir is set)
//  4. Heading outline extraction and table of contents rendering
//  5. Page composition (theme variables, base styles, feature scripts)
//
// A Goldmark engine is built for every call from the call's Options, so
// concurrent renders with different options never share engine state.
//
// # Themes
//
// Options.Theme selects the color scheme: "light", "dark", or "auto", which
// follows the viewer's prefers-color-scheme setting.
//
// # Custom Assets
//
// Override the built-in stylesheets and scripts with WithAssetPath:
//
//	r, err := rendermd.NewRenderer(rendermd.WithAssetPath("/path/to/assets"))
//
// Asset directory structure (missing files fall back to the embedded ones):
//
//	assets/
//	├── styles/
//	│   ├── base.css
//	│   ├── theme-light.css
//	│   └── theme-dark.css
//	└── scripts/
//	    ├── copy-button.js
//	    └── toc-scroll.js
//
// # PDF Export
//
// PDFExporter prints a rendered page through headless Chrome (go-rod). The
// browser is downloaded to ~/.cache/rod/browser/ on first use unless
// ROD_BROWSER_BIN points to an installed one. Set ROD_NO_SANDBOX=1 in
// containers and CI.
package rendermd
