package rendermd

import (
	"errors"

	"github.com/alnah/go-rendermd/internal/config"
	"github.com/alnah/go-rendermd/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion   = pipeline.ErrHTMLConversion
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Options validation errors.
	ErrInvalidTheme        = config.ErrInvalidTheme
	ErrInvalidCleanupDelay = config.ErrInvalidCleanupDelay

	// Browser errors.
	ErrBrowserOpen    = errors.New("failed to open browser")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
