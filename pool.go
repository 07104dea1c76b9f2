package rendermd

import (
	"errors"
	"runtime"
	"sync"
	"time"
)

// Worker bounds for ResolvePoolSize. Every PDF worker drives its own
// headless Chrome, which is what MaxPoolSize limits.
const (
	MinPoolSize = 1
	MaxPoolSize = 8

	// cpuDivisor keeps half the CPUs for Chrome's renderer processes.
	cpuDivisor = 2
)

// ExporterPool lends PDFExporters to batch workers. At most Size exporters
// exist; each is built on first demand, reused after Release, and owns one
// browser, so a pool of n exports n pages at once.
type ExporterPool struct {
	idle    chan *PDFExporter // released, ready for reuse
	unbuilt chan struct{}     // one token per exporter not built yet
	timeout time.Duration
	build   func(time.Duration) *PDFExporter

	mu     sync.Mutex
	built  []*PDFExporter
	closed bool
}

// NewExporterPool returns a pool of n exporters (at least one) using the
// given page timeout. No browser starts until an exporter renders.
func NewExporterPool(n int, timeout time.Duration) *ExporterPool {
	n = max(n, MinPoolSize)
	p := &ExporterPool{
		idle:    make(chan *PDFExporter, n),
		unbuilt: make(chan struct{}, n),
		timeout: timeout,
		build:   NewPDFExporter,
	}
	for range n {
		p.unbuilt <- struct{}{}
	}
	return p
}

// Acquire returns an idle exporter, builds one while the pool is below
// capacity, or waits for a Release.
func (p *ExporterPool) Acquire() *PDFExporter {
	select {
	case e := <-p.idle:
		return e
	default:
	}

	select {
	case e := <-p.idle:
		return e
	case <-p.unbuilt:
		e := p.build(p.timeout)
		p.mu.Lock()
		p.built = append(p.built, e)
		p.mu.Unlock()
		return e
	}
}

// Release hands e back for reuse. After Close it does nothing.
func (p *ExporterPool) Release(e *PDFExporter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || e == nil {
		return
	}
	select {
	case p.idle <- e:
	default: // idle is full, so e was already released
	}
}

// Close shuts every built exporter down and joins their errors.
// Calling it again is a no-op.
func (p *ExporterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	built := p.built
	p.built = nil
	p.mu.Unlock()

	errs := make([]error, 0, len(built))
	for _, e := range built {
		errs = append(errs, e.Close())
	}
	return errors.Join(errs...)
}

// Size returns the maximum number of exporters.
func (p *ExporterPool) Size() int {
	return cap(p.idle)
}

// ResolvePoolSize returns workers when positive, otherwise half of
// GOMAXPROCS (container-aware through automaxprocs) clamped to
// [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0)/cpuDivisor, MinPoolSize), MaxPoolSize)
}
