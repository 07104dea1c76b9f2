package rendermd

import (
	"fmt"
	"time"

	"github.com/alnah/go-rendermd/internal/config"
	"github.com/alnah/go-rendermd/internal/pipeline"
)

// Theme constants.
const (
	ThemeLight = pipeline.ThemeLight
	ThemeDark  = pipeline.ThemeDark
	ThemeAuto  = pipeline.ThemeAuto
)

// Cleanup delay bounds.
const (
	DefaultCleanupDelay = config.DefaultCleanupDelay * time.Millisecond
	MaxCleanupDelay     = time.Duration(config.MaxCleanupDelay) * time.Millisecond
)

// Options controls how a page is rendered and how long its temp file lives.
type Options struct {
	Theme           string // "light", "dark", "auto"
	TOC             bool
	LineNumbers     bool // advisory
	CopyButton      bool
	Math            bool
	Mermaid         bool
	SyntaxHighlight bool
	AutoCleanup     bool
	CleanupDelay    time.Duration
	CSS             string // extra stylesheet content, appended last
}

// DefaultOptions returns the built-in defaults: auto theme and every feature on.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

// OptionsFromConfig converts a resolved configuration into render options.
// The CSS field is left empty: the configuration holds a stylesheet path,
// which the caller reads.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Theme:           cfg.Theme,
		TOC:             cfg.TOC,
		LineNumbers:     cfg.LineNumbers,
		CopyButton:      cfg.CopyButton,
		Math:            cfg.Math,
		Mermaid:         cfg.Mermaid,
		SyntaxHighlight: cfg.SyntaxHighlight,
		AutoCleanup:     cfg.AutoCleanup,
		CleanupDelay:    time.Duration(cfg.CleanupDelay) * time.Millisecond,
	}
}

// Validate checks the theme and cleanup delay.
func (o Options) Validate() error {
	switch o.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		return fmt.Errorf("%w: %q (must be light, dark, or auto)", ErrInvalidTheme, o.Theme)
	}
	if o.CleanupDelay < 0 || o.CleanupDelay > MaxCleanupDelay {
		return fmt.Errorf("%w: %s (must be between 0 and %s)", ErrInvalidCleanupDelay, o.CleanupDelay, MaxCleanupDelay)
	}
	return nil
}

// pageOptions extracts the settings the page composer reads.
func (o Options) pageOptions() pipeline.PageOptions {
	return pipeline.PageOptions{
		Theme:           o.Theme,
		SyntaxHighlight: o.SyntaxHighlight,
		CopyButton:      o.CopyButton,
		CSS:             o.CSS,
	}
}

// engineOptions extracts the settings the Markdown engine reads.
func (o Options) engineOptions() pipeline.EngineOptions {
	return pipeline.EngineOptions{
		SyntaxHighlight: o.SyntaxHighlight,
		Mermaid:         o.Mermaid,
		Math:            o.Math,
	}
}

// Input contains render parameters.
type Input struct {
	Markdown  string  // Markdown content
	Title     string  // page title, usually the source file name
	SourceDir string  // directory for relative images and links (optional)
	Options   Options // a zero Options is invalid; start from DefaultOptions
}

// OutlineEntry is one heading of the rendered document.
type OutlineEntry = pipeline.OutlineEntry

// Result is the output of a render.
type Result struct {
	HTML       string         // complete document
	Outline    []OutlineEntry // headings listed in the TOC, nil when TOC is off
	HasMath    bool           // page loads the math renderer
	HasDiagram bool           // page loads the diagram renderer
}

// Option configures a Renderer.
type Option func(*rendererConfig)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout   time.Duration
	assetPath string
}

// defaultTimeout bounds a single render.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("rendermd: WithTimeout duration must be positive")
	}
	return func(c *rendererConfig) {
		c.timeout = d
	}
}

// WithAssetPath loads stylesheets and scripts from dir, falling back to the
// embedded assets for files dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *rendererConfig) {
		c.assetPath = dir
	}
}
