package main

import (
	"context"
	"fmt"

	rendermd "github.com/alnah/go-rendermd"
)

// Exporter is the interface for PDF export of a rendered page.
type Exporter interface {
	ExportFile(ctx context.Context, path string) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Exporter = (*rendermd.PDFExporter)(nil)

// Pool abstracts exporter pool operations for testability.
type Pool interface {
	Acquire() Exporter
	Release(Exporter)
	Size() int
	Close() error
}

// poolAdapter wraps rendermd.ExporterPool to implement Pool.
type poolAdapter struct {
	pool *rendermd.ExporterPool
}

// newPoolAdapter creates a browser-backed pool of size n.
func newPoolAdapter(n int) Pool {
	return &poolAdapter{pool: rendermd.NewExporterPool(n, 0)}
}

func (a *poolAdapter) Acquire() Exporter {
	return a.pool.Acquire()
}

// Release panics on a foreign Exporter: only values from Acquire come back.
func (a *poolAdapter) Release(e Exporter) {
	exp, ok := e.(*rendermd.PDFExporter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", e))
	}
	a.pool.Release(exp)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
