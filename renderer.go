package rendermd

import (
	"context"
	"fmt"

	"github.com/alnah/go-rendermd/internal/assets"
	"github.com/alnah/go-rendermd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Renderer turns Markdown into complete HTML pages.
// A Renderer is safe for concurrent use.
type Renderer struct {
	cfg          rendererConfig
	preprocessor pipeline.MarkdownPreprocessor
	newConverter func(pipeline.EngineOptions) pipeline.HTMLConverter
	composer     *pipeline.Composer
}

// NewRenderer creates a Renderer and loads its page assets.
// Returns error if a custom asset path is invalid or an asset cannot be read.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:          rendererConfig{timeout: defaultTimeout},
		preprocessor: &pipeline.SourcePreprocessor{},
		newConverter: func(o pipeline.EngineOptions) pipeline.HTMLConverter {
			return pipeline.NewGoldmarkConverter(o)
		},
	}

	for _, opt := range opts {
		opt(&r.cfg)
	}

	var loader assets.AssetLoader
	if r.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	composer, err := pipeline.NewComposer(loader)
	if err != nil {
		return nil, fmt.Errorf("initializing page composer: %w", err)
	}
	r.composer = composer

	return r, nil
}

// Render runs the full pipeline and returns the composed page.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	opts := input.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	// Preprocess markdown
	mdContent := r.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML with an engine built for these options
	content, err := r.newConverter(opts.engineOptions()).ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Rewrite relative paths to absolute file:// URLs (if source directory provided)
	if input.SourceDir != "" {
		content, err = pipeline.RewriteRelativeURLs(content, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	res := &Result{
		HasMath:    opts.Math && pipeline.HasMath(mdContent),
		HasDiagram: opts.Mermaid && pipeline.HasDiagram(content),
	}

	var toc string
	if opts.TOC {
		res.Outline = pipeline.ExtractOutline(content)
		toc = pipeline.RenderTOC(res.Outline)
	}

	res.HTML = r.composer.Compose(pipeline.PageInput{
		Content:    content,
		TOC:        toc,
		Title:      input.Title,
		Options:    opts.pageOptions(),
		HasMath:    res.HasMath,
		HasDiagram: res.HasDiagram,
	})
	return res, nil
}
