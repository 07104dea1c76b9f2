package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	rendermd "github.com/alnah/go-rendermd"
	"github.com/alnah/go-rendermd/internal/fileutil"
	"github.com/alnah/go-rendermd/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage                = errors.New("invalid usage")
	ErrNoInput              = errors.New("no input file specified")
	ErrReadMarkdown         = errors.New("failed to read markdown file")
	ErrReadCSS              = errors.New("failed to read CSS file")
	ErrWriteHTML            = errors.New("failed to write HTML file")
	ErrWritePDF             = errors.New("failed to write PDF file")
	ErrInvalidWorkerCount   = errors.New("invalid worker count")
	ErrOutputWithManyInputs = errors.New("--output needs exactly one input file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PageRenderer is the interface for the render service.
type PageRenderer interface {
	Render(ctx context.Context, input rendermd.Input) (*rendermd.Result, error)
}

// Compile-time interface implementation check.
var _ PageRenderer = (*rendermd.Renderer)(nil)

// runRenderCmd renders files until done or interrupted.
func runRenderCmd(args []string, env *Environment) error {
	ctx, stop := notifyContext(context.Background())
	defer stop()
	return runRender(ctx, args, env)
}

// runRender orchestrates parsing, rendering, opening and cleanup.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, files, err := parseRenderFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printRenderUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	files, err = discoverInputs(files)
	if err != nil {
		return err
	}
	if err := validateRenderArgs(flags, files); err != nil {
		return err
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	s, err := resolveSettings(flags, env)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		for _, w := range s.warnings {
			fmt.Fprintf(env.Stderr, "warning: %s\n", w)
		}
	}
	if flags.common.verbose && s.configPath != "" {
		fmt.Fprintf(env.Stderr, "Config: %s\n", s.configPath)
	}

	opts := rendermd.OptionsFromConfig(s.cfg)
	if s.cfg.CSS != "" {
		css, err := os.ReadFile(s.cfg.CSS) // #nosec G304 -- user-provided stylesheet
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts.CSS = string(css)
	}

	var rendererOpts []rendermd.Option
	if s.assetPath != "" {
		rendererOpts = append(rendererOpts, rendermd.WithAssetPath(s.assetPath))
	}
	renderer, err := rendermd.NewRenderer(rendererOpts...)
	if err != nil {
		return err
	}

	params := &renderParams{
		options: opts,
		output:  flags.output.path,
		workers: rendermd.ResolvePoolSize(s.workers),
	}
	if flags.output.pdf {
		pool := env.newPool(params.workers)
		defer func() {
			if err := pool.Close(); err != nil && flags.common.verbose {
				fmt.Fprintf(env.Stderr, "warning: closing browsers: %v\n", err)
			}
		}()
		params.pool = pool
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", params.workers)
	}
	if !flags.common.quiet {
		for _, f := range files {
			fmt.Fprintf(env.Stdout, "Rendering: %s\n", filepath.Base(f))
		}
	}

	results := renderBatch(ctx, renderer, files, params, env)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	ok := succeeded(results)
	if !flags.output.noOpen {
		if err := openAll(ok, flags.common.quiet, env); err != nil {
			removeTemps(ok, s.cfg.AutoCleanup)
			return err
		}
	}

	cleanup(ctx, ok, opts, flags.common.quiet, env)

	if failed > 0 {
		return batchError(results, failed)
	}
	return nil
}

// validateRenderArgs checks positional arguments and numeric flags.
func validateRenderArgs(flags *renderFlags, files []string) error {
	if len(files) == 0 {
		return ErrNoInput
	}
	if flags.output.path != "" && len(files) > 1 {
		return fmt.Errorf("%w (got %d)", ErrOutputWithManyInputs, len(files))
	}
	if flags.output.workers < 0 {
		return fmt.Errorf("%w: %d (must be 0 for auto or positive)", ErrInvalidWorkerCount, flags.output.workers)
	}
	return nil
}

// openAll opens every rendered page in the browser.
func openAll(results []RenderResult, quiet bool, env *Environment) error {
	for _, r := range results {
		if err := env.open(r.OutputPath); err != nil {
			return fmt.Errorf("%w%s", err, hints.ForBrowserOpen())
		}
		if !quiet {
			fmt.Fprintln(env.Stdout, "Opened in browser")
		}
	}
	return nil
}

// cleanup reports what happens to temp files and, with auto-cleanup on,
// blocks until they are removed. An interrupt removes them right away.
// Files written with --output are never removed.
func cleanup(ctx context.Context, results []RenderResult, opts rendermd.Options, quiet bool, env *Environment) {
	var temps []string
	for _, r := range results {
		if r.Temp {
			temps = append(temps, r.OutputPath)
		}
	}
	if len(temps) == 0 {
		return
	}

	if !opts.AutoCleanup {
		if !quiet {
			for _, p := range temps {
				fmt.Fprintf(env.Stdout, "Temp file saved at: %s\n", p)
			}
		}
		return
	}

	if !quiet {
		fmt.Fprintln(env.Stdout, cleanupNotice(opts.CleanupDelay))
	}

	var wg sync.WaitGroup
	for _, p := range temps {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			err := fileutil.RemoveAfter(ctx, path, opts.CleanupDelay)
			if err != nil && ctx.Err() == nil {
				fmt.Fprintf(env.Stderr, "warning: %v\n", err)
			}
		}(p)
	}
	wg.Wait()
}

// removeTemps deletes temp files that will never be viewed.
func removeTemps(results []RenderResult, autoCleanup bool) {
	if !autoCleanup {
		return
	}
	for _, r := range results {
		if r.Temp {
			_ = os.Remove(r.OutputPath)
		}
	}
}

// batchError summarizes failures. A single failure is returned as is so its
// exit code survives; several are counted and the first one is wrapped.
func batchError(results []RenderResult, failed int) error {
	var first error
	for _, r := range results {
		if r.Err != nil {
			first = r.Err
			break
		}
	}
	if len(results) == 1 {
		return first
	}
	return fmt.Errorf("%d of %d file(s) failed: %w", failed, len(results), first)
}

// looksLikeMarkdown reports whether arg names a Markdown file.
func looksLikeMarkdown(arg string) bool {
	return strings.HasSuffix(arg, ".md") || strings.HasSuffix(arg, ".markdown")
}

// cleanupNotice announces the delay in seconds, keeping fractions (1.5s).
func cleanupNotice(delay time.Duration) string {
	return fmt.Sprintf("Temp file will be cleaned up in %gs", delay.Seconds())
}
