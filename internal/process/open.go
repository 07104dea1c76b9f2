// Package process provides OS-specific helpers for launching and stopping
// external programs.
package process

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// ErrInvalidPID is returned for PIDs that cannot name a process group.
var ErrInvalidPID = errors.New("invalid process id")

// BrowserEnv names the environment variable that overrides the system opener.
const BrowserEnv = "BROWSER"

// OpenCommand returns the command that opens target with the user's default
// handler. A non-empty $BROWSER wins over the platform opener; it may carry
// arguments ("firefox --new-tab") and is split on whitespace.
func OpenCommand(target string) *exec.Cmd {
	if fields := strings.Fields(os.Getenv(BrowserEnv)); len(fields) > 0 {
		args := append(fields[1:len(fields):len(fields)], target)
		return exec.Command(fields[0], args...) // #nosec G204 -- user-chosen browser command
	}
	name, args := opener()
	return exec.Command(name, append(args, target)...) // #nosec G204 -- fixed platform opener
}

// OpenerName returns the program OpenCommand would run, for diagnostics.
func OpenerName() string {
	if fields := strings.Fields(os.Getenv(BrowserEnv)); len(fields) > 0 {
		return fields[0]
	}
	name, _ := opener()
	return name
}
