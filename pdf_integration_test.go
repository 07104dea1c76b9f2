//go:build integration

package rendermd

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

// TestPDFExporter_Integration renders a composed page through go-rod.
// Rod automatically downloads Chromium on first run if not found.
func TestPDFExporter_Integration(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.Theme = ThemeDark

	res, err := r.Render(context.Background(), Input{
		Markdown: "# Report\n\n## Summary\n\n```go\nfmt.Println(1)\n```\n",
		Title:    "report.md",
		Options:  opts,
	})
	if err != nil {
		t.Fatal(err)
	}

	pool := NewExporterPool(1, 30*time.Second)
	defer pool.Close()

	exporter := pool.Acquire()
	defer pool.Release(exporter)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	data, err := exporter.Export(ctx, res.HTML)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	assertValidPDF(t, data)
}
