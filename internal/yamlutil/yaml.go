// Package yamlutil reads and writes rc files with goccy/go-yaml.
// JSON is a subset of YAML, so .rendermdrc.json takes the same path as the
// YAML flavours.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps how much of an rc file is read.
const MaxInputSize = 256 << 10

var (
	ErrEmptyDocument  = errors.New("yamlutil: empty document")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Decode reads a single document from r into v. It stops reading one byte
// past MaxInputSize, so an oversized stream is never held in memory.
func Decode(r io.Reader, v any) error {
	if v == nil {
		return ErrNilDestination
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading: %w", err)
	}
	return Unmarshal(data, v)
}

// Unmarshal decodes YAML or JSON into v. Unknown keys are ignored.
func Unmarshal(data []byte, v any) error {
	switch {
	case v == nil:
		return ErrNilDestination
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, MaxInputSize)
	case len(bytes.TrimSpace(data)) == 0:
		return ErrEmptyDocument
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode writes v to w as block-style YAML indented by two spaces.
func Encode(w io.Writer, v any) error {
	if err := yaml.NewEncoder(w, yaml.Indent(2)).Encode(v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
