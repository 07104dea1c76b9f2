package assets

import "errors"

// AssetResolver layers loaders: each asset comes from the first loader that
// has it. Only a not-found result moves on to the next loader; invalid names
// and read failures are returned at once.
type AssetResolver struct {
	layers []AssetLoader
}

// NewAssetResolver returns a resolver over the embedded assets, with the
// directory customDir layered on top when it is non-empty.
func NewAssetResolver(customDir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customDir != "" {
		custom, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, custom)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

func (r *AssetResolver) LoadScript(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadScript(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.layers {
		var content string
		content, err = load(l)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrScriptNotFound) {
			return "", err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a user directory is layered in.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
