// Package hints suggests fixes for common CLI failures. A hint is a suffix
// of the form "\n  hint: <text>" that callers append to an error message;
// an empty string means there is nothing useful to add.
package hints

import (
	"os"
	"runtime"
	"strings"
)

const prefix = "\n  hint: "

// goos is swapped by tests.
var goos = runtime.GOOS

// ForBrowserOpen suggests fixes when the page cannot be opened.
func ForBrowserOpen() string {
	var tips []string
	switch {
	case strings.TrimSpace(os.Getenv("BROWSER")) != "":
		tips = append(tips, "check that $BROWSER points to an executable")
	case goos != "darwin" && goos != "windows":
		tips = append(tips, "install xdg-utils or set BROWSER to a browser command")
	}
	if DetectContainer() != "" {
		tips = append(tips, "no desktop in containers; use --no-open with --output")
	}
	return join(tips...)
}

// ForBrowserConnect suggests fixes when headless Chrome fails during PDF export.
func ForBrowserConnect() string {
	var tips []string
	if (CIProvider() != "" || DetectContainer() != "") && os.Getenv("ROD_NO_SANDBOX") != "1" {
		tips = append(tips, "set ROD_NO_SANDBOX=1 in containers and CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		tips = append(tips, "set ROD_BROWSER_BIN to choose the Chrome binary")
	}
	return join(tips...)
}

// ForConfigParse points at an rc file that failed to load.
func ForConfigParse(path string) string {
	if path == "" {
		return ""
	}
	return join("fix or remove " + path + "; defaults are used meanwhile")
}

// ForConfigNotFound is appended when an explicit rc file does not exist.
func ForConfigNotFound(names []string) string {
	if len(names) == 0 {
		return join("check the --config path")
	}
	return join("check the --config path, or create one of: " + strings.Join(names, ", "))
}

func ForOutputDirectory() string {
	return join("check that the parent directory exists and is writable")
}

func ForInvalidTheme() string {
	return join("available: light, dark, auto")
}

// join renders tips as one hint, or "" when there are none.
func join(tips ...string) string {
	if len(tips) == 0 {
		return ""
	}
	return prefix + strings.Join(tips, "; ")
}
