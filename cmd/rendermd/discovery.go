package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Sentinel errors for input discovery.
var (
	ErrInvalidPattern = errors.New("invalid glob pattern")
	ErrNoMatches      = errors.New("no Markdown files matched")
)

// markdownPattern selects Markdown files below a directory.
const markdownPattern = "**/*.{md,markdown}"

// discoverInputs expands render arguments into Markdown file paths.
// Glob patterns ("docs/**/*.md") are matched against the filesystem,
// directories are searched recursively, and anything else is kept as given
// so a missing file surfaces as a read error. Duplicates are dropped and
// the first occurrence fixes the order.
func discoverInputs(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		key := filepath.Clean(path)
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, path)
	}

	for _, arg := range args {
		switch {
		case hasGlobMeta(arg):
			matches, err := globMarkdown(arg)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		case isDir(arg):
			matches, err := walkMarkdown(arg)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		default:
			add(arg)
		}
	}
	return files, nil
}

// globMarkdown matches a user pattern, keeping only Markdown files.
func globMarkdown(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, pattern, err)
	}

	var files []string
	for _, m := range matches {
		if looksLikeMarkdown(m) {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	return files, nil
}

// walkMarkdown lists Markdown files below dir in lexical order.
func walkMarkdown(dir string) ([]string, error) {
	var files []string
	err := doublestar.GlobWalk(os.DirFS(dir), markdownPattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		files = append(files, filepath.Join(dir, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, dir)
	}
	return files, nil
}

func hasGlobMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
