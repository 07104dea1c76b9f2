package assets

import "embed"

//go:embed styles/*.css scripts/*.js
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (*EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readAsset(builtin, KindStyle, name)
}

func (*EmbeddedLoader) LoadScript(name string) (string, error) {
	return readAsset(builtin, KindScript, name)
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
