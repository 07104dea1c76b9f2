package main

// Notes:
// - printUsage/printRenderUsage: we test that required content strings are
//   present in the output. We don't test exact formatting as that's an
//   implementation detail.
// - runHelp: we test routing to the correct help topic.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	for _, s := range []string{"Usage: rendermd", "Commands:", "render", "config", "doctor", "completion", "version", "help"} {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintRenderUsage - Every render flag is documented
// ---------------------------------------------------------------------------

func TestPrintRenderUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRenderUsage(&buf)
	output := buf.String()

	for _, f := range extractFlagsFromFlagSet(buildRenderFlagSet()) {
		if !strings.Contains(output, "--"+f.Long) {
			t.Errorf("render usage should document --%s", f.Long)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Topic routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{nil, ExitSuccess, "Commands:", ""},
		{[]string{"render"}, ExitSuccess, "Usage: rendermd render", ""},
		{[]string{"config"}, ExitSuccess, "Usage: rendermd config", ""},
		{[]string{"doctor"}, ExitSuccess, "Usage: rendermd doctor", ""},
		{[]string{"completion"}, ExitSuccess, "Usage: rendermd completion", ""},
		{[]string{"version"}, ExitSuccess, "Usage: rendermd version", ""},
		{[]string{"help"}, ExitSuccess, "Usage: rendermd help", ""},
		{[]string{"bogus"}, ExitUsage, "", "Unknown command: bogus"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			if code := runHelp(tt.args, env.Environment); code != tt.wantCode {
				t.Errorf("runHelp(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q", tt.wantStdout)
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q", tt.wantStderr)
			}
		})
	}
}
