package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-rendermd/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// featureFlags holds page feature flags. Every feature is on by default,
// so the flags only switch them off.
type featureFlags struct {
	theme             string
	cleanupDelay      int
	noTOC             bool
	noLineNumbers     bool
	noCopyButton      bool
	noMath            bool
	noMermaid         bool
	noSyntaxHighlight bool
	noAutoCleanup     bool
}

// assetFlags holds stylesheet and asset directory flags.
type assetFlags struct {
	css       string
	assetPath string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	path    string
	noOpen  bool
	pdf     bool
	workers int
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	features featureFlags
	assets   assetFlags
	output   outputFlags

	// set records the flags given on the command line.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "rc file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFeatureFlags adds page feature flags to a FlagSet.
func addFeatureFlags(fs *flag.FlagSet, f *featureFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "color theme: light, dark, auto")
	fs.IntVar(&f.cleanupDelay, "cleanup-delay", 0, "temp file lifetime in milliseconds")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.BoolVar(&f.noLineNumbers, "no-line-numbers", false, "disable line numbers")
	fs.BoolVar(&f.noCopyButton, "no-copy-button", false, "disable code copy buttons")
	fs.BoolVar(&f.noMath, "no-math", false, "disable math rendering")
	fs.BoolVar(&f.noMermaid, "no-mermaid", false, "disable mermaid diagrams")
	fs.BoolVar(&f.noSyntaxHighlight, "no-syntax-highlight", false, "disable syntax highlighting")
	fs.BoolVar(&f.noAutoCleanup, "no-auto-cleanup", false, "keep the temp file")
}

// addAssetFlags adds stylesheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the page styles")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "write HTML here instead of a temp file")
	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the browser")
	fs.BoolVar(&f.pdf, "pdf", false, "also export a PDF next to the source")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// newRenderFlagSet registers every render flag on a fresh FlagSet bound to f.
// Completion builds its flag list from the same FlagSet.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addFeatureFlags(fs, &f.features)
	addAssetFlags(fs, &f.assets)
	addOutputFlags(fs, &f.output)
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
// Errors are returned rather than printed; flag.ErrHelp signals -h/--help.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	f := &renderFlags{set: make(map[string]bool)}
	fs := newRenderFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})

	return f, fs.Args(), nil
}

// overrides converts the flags given on the command line into a
// configuration source. Flags left at their defaults set nothing.
func (f *renderFlags) overrides() config.Overrides {
	var o config.Overrides

	if f.set["theme"] {
		o.Theme = &f.features.theme
	}
	if f.set["cleanup-delay"] {
		o.CleanupDelay = &f.features.cleanupDelay
	}
	if f.set["css"] {
		o.CSS = &f.assets.css
	}

	off := false
	if f.features.noTOC {
		o.TOC = &off
	}
	if f.features.noLineNumbers {
		o.LineNumbers = &off
	}
	if f.features.noCopyButton {
		o.CopyButton = &off
	}
	if f.features.noMath {
		o.Math = &off
	}
	if f.features.noMermaid {
		o.Mermaid = &off
	}
	if f.features.noSyntaxHighlight {
		o.SyntaxHighlight = &off
	}
	if f.features.noAutoCleanup {
		o.AutoCleanup = &off
	}

	return o
}
