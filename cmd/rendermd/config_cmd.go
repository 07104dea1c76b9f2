package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-rendermd/internal/yamlutil"
)

// runConfigCmd prints the resolved configuration as YAML, preceded by a
// comment naming the rc file it came from.
func runConfigCmd(args []string, env *Environment) error {
	f := &renderFlags{set: make(map[string]bool)}
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printConfigUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	s, err := resolveSettings(f, env)
	if err != nil {
		return err
	}
	for _, w := range s.warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}

	source := "defaults"
	if s.configPath != "" {
		source = s.configPath
	}
	fmt.Fprintf(env.Stdout, "# source: %s\n", source)
	if err := yamlutil.Encode(env.Stdout, s.cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
