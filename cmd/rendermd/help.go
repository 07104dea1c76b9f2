package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rendermd [flags] <file>...")
	fmt.Fprintln(w, "       rendermd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown to a styled HTML page and open it in the browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render markdown files (default)")
	fmt.Fprintln(w, "  config      Print the resolved configuration")
	fmt.Fprintln(w, "  doctor      Check browser and system setup")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'rendermd help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rendermd render <file|dir|glob>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to self-contained HTML pages and open them.")
	fmt.Fprintln(w, "Directories are searched recursively; globs support ** (quote them).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Appearance:")
	fmt.Fprintln(w, "  -t, --theme <s>             Theme: light, dark, auto")
	fmt.Fprintln(w, "      --css <path>            Extra CSS file, applied last")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Features (all on by default):")
	fmt.Fprintln(w, "      --no-toc                Disable table of contents")
	fmt.Fprintln(w, "      --no-line-numbers       Disable line numbers")
	fmt.Fprintln(w, "      --no-copy-button        Disable code copy buttons")
	fmt.Fprintln(w, "      --no-math               Disable math rendering")
	fmt.Fprintln(w, "      --no-mermaid            Disable mermaid diagrams")
	fmt.Fprintln(w, "      --no-syntax-highlight   Disable syntax highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Write HTML here instead of a temp file")
	fmt.Fprintln(w, "      --no-open               Do not open the browser")
	fmt.Fprintln(w, "      --pdf                   Also export <name>.pdf next to the source")
	fmt.Fprintln(w, "      --no-auto-cleanup       Keep the temp file")
	fmt.Fprintln(w, "      --cleanup-delay <ms>    Temp file lifetime (default 60000)")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <path>         rc file (default: .rendermdrc in ./ or ~/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RENDERMD_THEME, RENDERMD_TOC, RENDERMD_MATH, ... override the rc file;")
	fmt.Fprintln(w, "  flags override both.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rendermd config [-c <path>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration a render would use, as YAML.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: rendermd doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check the browser opener, Chrome for PDF export, and the rc file.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: rendermd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: rendermd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
