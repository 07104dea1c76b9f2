// Package assets provides the CSS and JavaScript that make a rendered page
// self-contained.
//
// # Loaders
//
// Every loader reads a tree with one directory per Kind through io/fs:
//
//	EmbeddedLoader    go:embed tree compiled into the binary
//	FilesystemLoader  a user directory, confined to that directory
//	AssetResolver     loaders layered, user directory first
//
// The page composer loads through an AssetResolver, so a directory holding
// only styles/theme-dark.css changes the dark palette and keeps everything
// else.
//
// # Directory Structure
//
//	{dir}/
//	├── styles/
//	│   └── {name}.css    # e.g. base.css, theme-light.css, theme-dark.css
//	└── scripts/
//	    └── {name}.js     # e.g. copy-button.js, toc-scroll.js
//
// # Security
//
// Names are restricted to letters, digits, '-' and '_'. FilesystemLoader
// also resolves symlinks and refuses files that end up outside its directory.
package assets
