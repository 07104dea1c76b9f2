package main

import (
	"io"
	"os"
	"time"

	rendermd "github.com/alnah/go-rendermd"
	"github.com/alnah/go-rendermd/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the browser launcher, the rc-file search path and
// the PDF exporter pool.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	Open       func(path string) error // nil = rendermd.OpenInBrowser
	SearchDirs func() []string         // nil = config.SearchDirs
	NewPool    func(size int) Pool     // nil = browser-backed exporters
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Open:       rendermd.OpenInBrowser,
		SearchDirs: config.SearchDirs,
		NewPool:    newPoolAdapter,
	}
}

func (e *Environment) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Environment) open(path string) error {
	if e.Open == nil {
		return rendermd.OpenInBrowser(path)
	}
	return e.Open(path)
}

func (e *Environment) searchDirs() []string {
	if e.SearchDirs == nil {
		return config.SearchDirs()
	}
	return e.SearchDirs()
}

func (e *Environment) newPool(n int) Pool {
	if e.NewPool == nil {
		return newPoolAdapter(n)
	}
	return e.NewPool(n)
}
