package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment, files and exporter pool
// ---------------------------------------------------------------------------

// testEnv is an Environment with captured output and a recording opener.
type testEnv struct {
	*Environment
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	mu      sync.Mutex
	opened  []string
	openErr error
}

// newTestEnv returns an environment that never starts a browser and only
// searches an empty directory for rc files.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	rcDir := t.TempDir()

	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Now:        time.Now,
		Stdout:     te.stdout,
		Stderr:     te.stderr,
		SearchDirs: func() []string { return []string{rcDir} },
	}
	te.Open = func(path string) error {
		te.mu.Lock()
		defer te.mu.Unlock()
		if te.openErr != nil {
			return te.openErr
		}
		te.opened = append(te.opened, path)
		return nil
	}
	return te
}

// writeTestFile writes content under dir and returns the full path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// mockExporter returns fixed PDF bytes.
type mockExporter struct {
	mu    sync.Mutex
	pdf   []byte
	err   error
	paths []string
}

func (m *mockExporter) ExportFile(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
	if m.err != nil {
		return nil, m.err
	}
	return m.pdf, nil
}

// mockPool hands out a single shared exporter.
type mockPool struct {
	exporter *mockExporter
	size     int
	closed   bool
}

func (p *mockPool) Acquire() Exporter { return p.exporter }

func (p *mockPool) Release(Exporter) {}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}
