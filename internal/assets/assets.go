package assets

// Built-in style names, as found under styles/ without the .css suffix.
const (
	StyleBase       = "base"
	StyleThemeLight = "theme-light"
	StyleThemeDark  = "theme-dark"
	StyleCopyButton = "copy-button"
	StyleMath       = "math"
)

// Built-in script names.
const (
	ScriptCopyButton = "copy-button"
	ScriptTOCScroll  = "toc-scroll"
)
