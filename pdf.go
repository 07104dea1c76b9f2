package rendermd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-rendermd/internal/fileutil"
	"github.com/alnah/go-rendermd/internal/process"
)

// pdfRenderer prints an HTML file to PDF. Tests swap in a fake.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pdfRenderer = (*rodRenderer)(nil)

// US Letter, in inches.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// Environment variables read when launching the browser.
const (
	envBrowserBin = "ROD_BROWSER_BIN"
	envNoSandbox  = "ROD_NO_SANDBOX"
)

// rodRenderer prints pages with a go-rod controlled Chrome. Rod downloads
// Chromium on first use when none is installed.
type rodRenderer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// launchSettings reports which Chrome binary to use and whether the
// sandbox must be disabled. An explicit binary usually means a container
// image, where the sandbox cannot start either.
func launchSettings(getenv func(string) string) (bin string, noSandbox bool) {
	bin = getenv(envBrowserBin)
	noSandbox = bin != "" || getenv(envNoSandbox) == "1" || getenv("CI") == "true"
	return bin, noSandbox
}

// ensureBrowser starts Chrome on first use. Callers hold r.mu.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	bin, noSandbox := launchSettings(os.Getenv)
	if bin != "" {
		l = l.Bin(bin)
	}
	if noSandbox {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		_ = r.kill(l)
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher, r.browser = l, browser
	return nil
}

// loadTimeout bounds the page load by the context deadline when there is
// one, and by the renderer default otherwise.
func loadTimeout(ctx context.Context, fallback time.Duration) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return fallback, nil
	}
	left := time.Until(deadline)
	if left <= 0 {
		return 0, context.DeadlineExceeded
	}
	return left, nil
}

// RenderFromFile loads a written page and prints it. Rod's Must* helpers
// are avoided so browser failures come back as errors.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL(filePath)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout, err := loadTimeout(ctx, r.timeout)
	if err != nil {
		return nil, err
	}
	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	doc, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading stream: %v", ErrPDFGeneration, err)
	}
	return doc, nil
}

// Close releases browser resources. The browser's process group is killed
// so renderer helpers do not outlive it.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.browser = nil
	killErr := r.kill(r.launcher)
	r.launcher = nil
	return errors.Join(err, killErr)
}

// kill stops the launched browser's process group, then lets the launcher
// reap the process and remove its profile directory.
func (r *rodRenderer) kill(l *launcher.Launcher) error {
	if l == nil {
		return nil
	}
	var err error
	if pid := l.PID(); pid > 0 {
		err = process.KillProcessGroup(pid)
	}
	l.Kill()
	l.Cleanup()
	return err
}

// printOptions prints backgrounds so themed pages keep their colors.
func printOptions() *proto.PagePrintToPDF {
	width, height, margin := paperWidthInches, float64(paperHeightInches), marginInches
	return &proto.PagePrintToPDF{
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
		PrintBackground: true,
	}
}

// fileURL converts a local path to a file:// URL.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	p := filepath.ToSlash(abs)
	if p != "" && p[0] != '/' {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// PDFExporter prints rendered pages to PDF using headless Chrome.
// The browser starts on the first export and stays up until Close.
type PDFExporter struct {
	renderer pdfRenderer
}

// NewPDFExporter creates a PDFExporter whose page loads time out after timeout.
// A non-positive timeout uses the default.
func NewPDFExporter(timeout time.Duration) *PDFExporter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PDFExporter{renderer: newRodRenderer(timeout)}
}

// ExportFile renders the HTML file at path to PDF bytes.
func (e *PDFExporter) ExportFile(ctx context.Context, path string) ([]byte, error) {
	return e.renderer.RenderFromFile(ctx, path)
}

// Export renders an HTML document held in memory to PDF bytes.
// The document is written to a temp file for the duration of the call.
func (e *PDFExporter) Export(ctx context.Context, htmlContent string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return e.renderer.RenderFromFile(ctx, tmpPath)
}

// Close releases the browser.
func (e *PDFExporter) Close() error {
	if e.renderer != nil {
		return e.renderer.Close()
	}
	return nil
}
