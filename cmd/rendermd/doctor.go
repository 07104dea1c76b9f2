package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-rendermd/internal/assets"
	"github.com/alnah/go-rendermd/internal/config"
	"github.com/alnah/go-rendermd/internal/hints"
	"github.com/alnah/go-rendermd/internal/process"
)

// Finding levels, mildest first.
const (
	levelOK    = "ok"
	levelWarn  = "warn"
	levelError = "error"
)

// Report statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// finding is one line of a doctor section.
type finding struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func okf(format string, args ...any) finding {
	return finding{Level: levelOK, Message: fmt.Sprintf(format, args...)}
}

func warnf(format string, args ...any) finding {
	return finding{Level: levelWarn, Message: fmt.Sprintf(format, args...)}
}

func failf(format string, args ...any) finding {
	return finding{Level: levelError, Message: fmt.Sprintf(format, args...)}
}

// section is the outcome of one check.
type section struct {
	Title    string    `json:"title"`
	Findings []finding `json:"findings"`
}

// doctorReport is what `rendermd doctor` prints, or encodes with --json.
// The typed fields carry the facts behind the findings for scripts.
type doctorReport struct {
	Status   string     `json:"status"`
	Sections []section  `json:"sections"`
	Opener   openerInfo `json:"opener"`
	Chrome   chromeInfo `json:"chrome"`
	Config   configInfo `json:"config"`
	Env      envInfo    `json:"environment"`
}

type openerInfo struct {
	Command string `json:"command"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	FromEnv bool   `json:"from_browser_env"`
}

// chromeInfo describes the browser used by --pdf. Only --pdf needs it,
// so its absence is a warning.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type configInfo struct {
	Path      string `json:"path,omitempty"`
	Theme     string `json:"theme"`
	AssetPath string `json:"asset_path,omitempty"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	TempWritable  bool   `json:"temp_writable"`
}

// doctorCheck fills its part of the report and returns the findings shown
// under title.
type doctorCheck struct {
	title string
	run   func(r *doctorReport, env *Environment) []finding
}

// doctorChecks run in order; the environment check reads Chrome results.
var doctorChecks = []doctorCheck{
	{"Browser", checkOpener},
	{"Chrome/Chromium (PDF export)", checkChrome},
	{"Configuration", checkConfig},
	{"Environment", checkEnvironment},
	{"System", checkTempDir},
}

// runDoctorCmd prints the report and returns 0, or 1 when a check failed.
// Warnings alone do not fail the command.
func runDoctorCmd(args []string, env *Environment) int {
	asJSON := false
	for _, arg := range args {
		asJSON = asJSON || arg == "--json"
	}

	report := runDoctor(env)
	if asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		report.print(env.Stdout)
	}

	if report.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

func runDoctor(env *Environment) *doctorReport {
	r := &doctorReport{Env: envInfo{OS: runtime.GOOS, Arch: runtime.GOARCH}}
	for _, c := range doctorChecks {
		r.Sections = append(r.Sections, section{Title: c.title, Findings: c.run(r, env)})
	}
	r.Status = r.status()
	return r
}

// status is the worst level across all findings.
func (r *doctorReport) status() string {
	status := statusReady
	for _, s := range r.Sections {
		for _, f := range s.Findings {
			switch f.Level {
			case levelError:
				return statusErrors
			case levelWarn:
				status = statusWarnings
			}
		}
	}
	return status
}

func (r *doctorReport) print(w io.Writer) {
	fmt.Fprintln(w, "rendermd doctor")
	for _, s := range r.Sections {
		fmt.Fprintf(w, "\n%s\n", s.Title)
		for _, f := range s.Findings {
			fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(f.Level), f.Message)
		}
	}
	fmt.Fprintln(w)

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to render")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	default:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// checkOpener looks up the program that opens rendered pages.
func checkOpener(r *doctorReport, _ *Environment) []finding {
	r.Opener.Command = process.OpenerName()
	r.Opener.FromEnv = strings.TrimSpace(os.Getenv(process.BrowserEnv)) != ""

	path, err := exec.LookPath(r.Opener.Command)
	if err != nil {
		f := failf("Opener %q not found", r.Opener.Command)
		if !r.Opener.FromEnv {
			f.Message += "; set BROWSER, or render with --no-open --output"
		}
		return []finding{f}
	}
	r.Opener.Found = true
	r.Opener.Path = path

	source := "system default"
	if r.Opener.FromEnv {
		source = "from " + process.BrowserEnv
	}
	return []finding{okf("Opener: %s (%s)", path, source)}
}

// checkChrome locates the browser go-rod would launch for --pdf.
func checkChrome(r *doctorReport, _ *Environment) []finding {
	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin == "" {
		var found bool
		if bin, found = launcher.LookPath(); !found {
			return []finding{warnf("Not found; --pdf is unavailable. Install Chrome or set ROD_BROWSER_BIN")}
		}
	}
	if _, err := os.Stat(bin); err != nil {
		return []finding{warnf("Not found at %s; --pdf is unavailable", bin)}
	}

	r.Chrome.Found = true
	r.Chrome.Path = bin
	r.Chrome.Sandbox = os.Getenv("ROD_NO_SANDBOX") != "1"
	findings := []finding{okf("Found at %s", bin)}

	// #nosec G204 -- binary located above
	if out, err := exec.Command(bin, "--version").Output(); err == nil {
		r.Chrome.Version = strings.TrimSpace(string(out))
		findings = append(findings, okf("Version: %s", r.Chrome.Version))
	} else {
		findings = append(findings, warnf("Could not read version: %v", err))
	}

	if r.Chrome.Sandbox {
		findings = append(findings, okf("Sandbox: enabled"))
	} else {
		findings = append(findings, okf("Sandbox: disabled (ROD_NO_SANDBOX=1)"))
	}
	return findings
}

// checkConfig reports the rc file a render from here would load.
func checkConfig(r *doctorReport, env *Environment) []finding {
	o, path, problems := config.Discover(env.searchDirs())
	r.Config.Path = path
	r.Config.Theme = config.Resolve(o).Theme

	var findings []finding
	if path != "" {
		findings = append(findings, okf("rc file: %s", path))
	} else {
		findings = append(findings, okf("rc file: none (defaults)"))
	}
	findings = append(findings, okf("Theme: %s", r.Config.Theme))
	for _, p := range problems {
		findings = append(findings, warnf("%v", p))
	}
	return append(findings, checkAssetDir(r, os.Getenv(envAssetPath)))
}

// checkAssetDir validates the asset override directory, if any.
func checkAssetDir(r *doctorReport, dir string) finding {
	r.Config.AssetPath = dir
	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		return failf("Asset directory unusable: %v", err)
	}
	if !resolver.HasCustomLoader() {
		return okf("Asset directory: none (built-in)")
	}
	return okf("Asset directory: %s", dir)
}

// checkEnvironment detects containers and CI, where Chrome needs
// ROD_NO_SANDBOX=1 to start.
func checkEnvironment(r *doctorReport, _ *Environment) []finding {
	findings := []finding{okf("Platform: %s/%s", r.Env.OS, r.Env.Arch)}

	if hint := hints.DetectContainer(); hint != "" {
		r.Env.Container = true
		r.Env.ContainerHint = hint
		findings = append(findings, okf("Container: detected (%s)", hint))
	}
	if v := hints.CIProvider(); v != "" {
		r.Env.CI = true
		findings = append(findings, okf("CI: detected (%s)", v))
	}

	if (r.Env.Container || r.Env.CI) && r.Chrome.Found && r.Chrome.Sandbox {
		findings = append(findings, warnf("Sandboxed Chrome may not start here; set ROD_NO_SANDBOX=1 for --pdf"))
	}
	return findings
}

// checkTempDir verifies rendered pages can be written.
func checkTempDir(r *doctorReport, _ *Environment) []finding {
	dir := os.TempDir()
	tmp, err := os.CreateTemp(dir, "rendermd-doctor-*")
	if err != nil {
		return []finding{failf("Temp directory not writable: %s", dir)}
	}
	_ = tmp.Close()
	_ = os.Remove(filepath.Clean(tmp.Name()))

	r.Env.TempWritable = true
	return []finding{okf("Temp directory: %s (writable)", dir)}
}
