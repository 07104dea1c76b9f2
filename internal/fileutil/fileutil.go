// Package fileutil provides temp-file and path utility functions.
package fileutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNegativeDelay          = errors.New("removal delay cannot be negative")
)

// TempPrefix starts every temp file name written by this package.
const TempPrefix = "rendermd-"

// WriteTempHTML writes content to a new file in the system temp directory.
// The name is derived from sourcePath so a browser tab shows where the page
// came from: "notes.md" becomes "rendermd-notes-<random>.html". The file is
// created with mode 0600.
func WriteTempHTML(content, sourcePath string) (string, error) {
	return writeTemp(os.TempDir(), content, TempPrefix+tempStem(sourcePath)+"-*.html")
}

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	path, err = writeTemp("", content, TempPrefix+"*."+extension)
	if err != nil {
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func writeTemp(dir, content, pattern string) (string, error) {
	tmpFile, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	path := tmpFile.Name()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, nil
}

// tempStem reduces a source path to a file-name-safe stem.
func tempStem(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "page"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '/', '\\', 0:
			return '_'
		}
		return r
	}, base)
}

// RemoveAfter blocks until delay has elapsed, then removes path. If ctx is
// cancelled first the file is removed immediately and ctx.Err() is returned.
// A file that is already gone is not an error.
func RemoveAfter(ctx context.Context, path string, delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDelay, delay)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	var waitErr error
	select {
	case <-timer.C:
	case <-ctx.Done():
		waitErr = ctx.Err()
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing temp file: %w", err)
	}
	return waitErr
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReplaceExt swaps the extension of path for ext ("notes.md", ".pdf" gives
// "notes.pdf"). A path without extension gets ext appended.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
