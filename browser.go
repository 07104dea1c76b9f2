package rendermd

import (
	"fmt"
	"os/exec"

	"github.com/alnah/go-rendermd/internal/fileutil"
	"github.com/alnah/go-rendermd/internal/process"
)

// WriteTemp writes a rendered page to a fresh temp file named after
// sourcePath and returns its path. The file is readable only by its owner.
func WriteTemp(html, sourcePath string) (string, error) {
	return fileutil.WriteTempHTML(html, sourcePath)
}

// startCommand is swapped in tests.
var startCommand = func(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// Openers such as xdg-open hand off and exit; reap them in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenInBrowser opens path with the system browser, or with the command in
// $BROWSER when set. It returns once the opener has started.
func OpenInBrowser(path string) error {
	cmd := process.OpenCommand(path)
	if err := startCommand(cmd); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBrowserOpen, cmd.Path, err)
	}
	return nil
}
