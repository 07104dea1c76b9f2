package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// AssetLoader loads page styles and scripts by bare name ("base", not
// "base.css"). Missing assets report ErrStyleNotFound or ErrScriptNotFound;
// unsafe names report ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadScript(name string) (string, error)
}

// Kind is an asset family: the directory it lives in, its file extension
// and the error reported when a name is missing.
type Kind struct {
	Dir      string
	Ext      string
	NotFound error
}

// Asset kinds served by the loaders.
var (
	KindStyle  = Kind{Dir: "styles", Ext: ".css", NotFound: ErrStyleNotFound}
	KindScript = Kind{Dir: "scripts", Ext: ".js", NotFound: ErrScriptNotFound}
)

// File returns the slash-separated path of name within an asset tree.
func (k Kind) File(name string) string {
	return path.Join(k.Dir, name+k.Ext)
}

// readAsset validates name and reads it from fsys.
func readAsset(fsys fs.FS, k Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(fsys, k.File(name))
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.NotFound, name)
	case errors.Is(err, ErrPathTraversal):
		return "", err
	default:
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, k.File(name), err)
	}
}
