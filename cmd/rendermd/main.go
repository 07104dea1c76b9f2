package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-rendermd/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// A first argument that is a flag or a file renders directly, as if
// "render" had been given.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		switch {
		case cmd == "-h" || cmd == "--help":
			cmd = "help"
		case cmd == "--version":
			cmd = "version"
		case strings.HasPrefix(cmd, "-") || looksLikeMarkdown(cmd) || hasGlobMeta(cmd) || fileutil.FileExists(cmd) || isDir(cmd):
			cmd, rest = "render", args[1:]
		default:
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	var err error
	switch cmd {
	case "help":
		return runHelp(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "rendermd %s\n", Version)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "config":
		err = runConfigCmd(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "render":
		err = runRenderCmd(rest, env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case "render", "config", "doctor", "completion", "version", "help":
		return true
	}
	return false
}

// hasVerboseFlag reports whether -v or --verbose appears in args.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
