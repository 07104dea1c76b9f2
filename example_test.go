package rendermd_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-rendermd"
)

// Example renders markdown into a complete page.
func Example() {
	r, err := rendermd.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := r.Render(context.Background(), rendermd.Input{
		Markdown: "# Hello World\n\n## Setup\n\nThis is a test.",
		Title:    "hello.md",
		Options:  rendermd.DefaultOptions(),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.HasPrefix(result.HTML, "<!DOCTYPE html>"))
	for _, e := range result.Outline {
		fmt.Printf("h%d #%s %s\n", e.Level, e.ID, e.Text)
	}
	// Output:
	// true
	// h2 #setup Setup
}

// Example_theme shows the dark theme with features switched off.
func Example_theme() {
	r, err := rendermd.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := rendermd.DefaultOptions()
	opts.Theme = rendermd.ThemeDark
	opts.TOC = false
	opts.CopyButton = false

	result, err := r.Render(context.Background(), rendermd.Input{
		Markdown: "## Notes\n\nPrice: $5",
		Options:  opts,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("toc:", strings.Contains(result.HTML, `class="toc"`))
	fmt.Println("math:", result.HasMath)
	fmt.Println("diagram:", result.HasDiagram)
	// Output:
	// toc: false
	// math: true
	// diagram: false
}

// Example_invalidTheme shows options validation.
func Example_invalidTheme() {
	r, err := rendermd.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := rendermd.DefaultOptions()
	opts.Theme = "sepia"

	_, err = r.Render(context.Background(), rendermd.Input{Markdown: "x", Options: opts})
	fmt.Println(err)
	// Output: invalid theme: "sepia" (must be light, dark, or auto)
}
