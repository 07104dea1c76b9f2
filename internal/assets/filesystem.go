package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves assets from a user directory laid out like the
// embedded tree (styles/*.css, scripts/*.js).
type FilesystemLoader struct {
	fsys confinedFS
}

// NewFilesystemLoader checks that dir is a readable directory.
// Returns ErrInvalidBasePath otherwise.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	if _, err := os.ReadDir(root); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
		case !isDir(root):
			return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
		default:
			return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
		}
	}

	return &FilesystemLoader{fsys: confinedFS{root: root}}, nil
}

// Dir returns the resolved asset directory.
func (f *FilesystemLoader) Dir() string {
	return f.fsys.root
}

func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return readAsset(f.fsys, KindStyle, name)
}

func (f *FilesystemLoader) LoadScript(name string) (string, error) {
	return readAsset(f.fsys, KindScript, name)
}

// confinedFS is a read-only view of root that refuses files whose resolved
// location, symlinks included, lies outside root.
type confinedFS struct {
	root string
}

func (c confinedFS) Open(name string) (fs.File, error) {
	p, err := c.resolve("open", name)
	if err != nil {
		return nil, err
	}
	return os.Open(p) // #nosec G304 -- confined to root
}

func (c confinedFS) ReadFile(name string) ([]byte, error) {
	p, err := c.resolve("read", name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p) // #nosec G304 -- confined to root
}

func (c confinedFS) resolve(op, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}

	p := filepath.Join(c.root, filepath.FromSlash(name))
	// A missing file keeps its path; the read reports ErrNotExist.
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}

	rel, err := filepath.Rel(c.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s leaves %s", ErrPathTraversal, name, c.root)
	}
	return p, nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Compile-time interface checks.
var (
	_ AssetLoader   = (*FilesystemLoader)(nil)
	_ fs.ReadFileFS = confinedFS{}
)
