package main

import (
	"errors"
	"os"

	rendermd "github.com/alnah/go-rendermd"
	"github.com/alnah/go-rendermd/internal/config"
)

// Exit codes. Custom codes stay below 126, which shells reserve.
const (
	ExitSuccess = 0 // rendered (and opened)
	ExitGeneral = 1
	ExitUsage   = 2 // flags, config, validation
	ExitIO      = 3 // reading inputs, writing outputs
	ExitBrowser = 4 // opener, Chrome, PDF
)

// exitClass maps a group of sentinel errors to one exit code.
type exitClass struct {
	code int
	errs []error
}

// exitClasses is checked in order; browser errors win over I/O errors,
// which win over usage errors.
var exitClasses = []exitClass{
	{ExitBrowser, []error{
		rendermd.ErrBrowserOpen,
		rendermd.ErrBrowserConnect,
		rendermd.ErrPageCreate,
		rendermd.ErrPageLoad,
		rendermd.ErrPDFGeneration,
	}},
	{ExitIO, []error{
		os.ErrNotExist,
		os.ErrPermission,
		ErrReadMarkdown,
		ErrReadCSS,
		ErrWriteHTML,
		ErrWritePDF,
	}},
	{ExitUsage, []error{
		ErrUsage,
		ErrNoInput,
		ErrInvalidWorkerCount,
		ErrOutputWithManyInputs,
		ErrInvalidPattern,
		ErrNoMatches,
		ErrUnsupportedShell,
		config.ErrConfigNotFound,
		config.ErrConfigParse,
		rendermd.ErrInvalidTheme,
		rendermd.ErrInvalidCleanupDelay,
		rendermd.ErrInvalidAssetPath,
	}},
}

// exitCodeFor returns the exit code for err. Wrapped errors are matched
// with errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	for _, class := range exitClasses {
		for _, target := range class.errs {
			if errors.Is(err, target) {
				return class.code
			}
		}
	}
	return ExitGeneral
}
