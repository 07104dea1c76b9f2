package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	rendermd "github.com/alnah/go-rendermd"
	"github.com/alnah/go-rendermd/internal/fileutil"
	"github.com/alnah/go-rendermd/internal/hints"
)

// renderParams groups parameters shared across a batch.
type renderParams struct {
	options rendermd.Options
	output  string // explicit HTML path, single-file batches only
	workers int
	pool    Pool // nil unless --pdf
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string // HTML file
	PDFPath    string // empty unless exported
	Temp       bool   // OutputPath is a temp file
	Err        error
	Duration   time.Duration
}

// renderBatch renders files concurrently. Results keep the input order.
func renderBatch(ctx context.Context, renderer PageRenderer, files []string, params *renderParams, env *Environment) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := params.workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var exporter Exporter
			if params.pool != nil {
				exporter = params.pool.Acquire()
				defer params.pool.Release(exporter)
			}

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{InputPath: files[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, renderer, exporter, files[idx], params, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile renders one Markdown file, writes the page and optionally
// exports it to PDF next to the source.
func renderFile(ctx context.Context, renderer PageRenderer, exporter Exporter, path string, params *renderParams, env *Environment) RenderResult {
	start := env.now()
	result := RenderResult{InputPath: path}
	done := func(err error) RenderResult {
		result.Err = err
		result.Duration = env.now().Sub(start)
		return result
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return done(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	sourceDir := filepath.Dir(path)
	if abs, err := filepath.Abs(path); err == nil {
		sourceDir = filepath.Dir(abs)
	}

	res, err := renderer.Render(ctx, rendermd.Input{
		Markdown:  string(content),
		Title:     filepath.Base(path),
		SourceDir: sourceDir,
		Options:   params.options,
	})
	if err != nil {
		return done(err)
	}

	if params.output != "" {
		if err := os.MkdirAll(filepath.Dir(params.output), dirPermissions); err != nil {
			return done(fmt.Errorf("%w: creating output directory: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory()))
		}
		// #nosec G306 -- HTML pages are meant to be readable
		if err := os.WriteFile(params.output, []byte(res.HTML), filePermissions); err != nil {
			return done(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
		result.OutputPath = params.output
	} else {
		tmp, err := rendermd.WriteTemp(res.HTML, path)
		if err != nil {
			return done(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
		result.OutputPath = tmp
		result.Temp = true
	}

	if exporter != nil {
		pdf, err := exporter.ExportFile(ctx, result.OutputPath)
		if err != nil {
			return done(fmt.Errorf("%w%s", err, hints.ForBrowserConnect()))
		}
		pdfPath := fileutil.ReplaceExt(path, ".pdf")
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(pdfPath, pdf, filePermissions); err != nil {
			return done(fmt.Errorf("%w: %v", ErrWritePDF, err))
		}
		result.PDFPath = pdfPath
	}

	return done(nil)
}

// succeeded returns the results that produced a page.
func succeeded(results []RenderResult) []RenderResult {
	var ok []RenderResult
	for _, r := range results {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	return ok
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs render results and returns the failure count.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "Generated: %s (%v)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Generated: %s\n", r.OutputPath)
		}
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Exported: %s\n", r.PDFPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
