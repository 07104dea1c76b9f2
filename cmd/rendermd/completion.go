package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values (shells for completion)
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"theme":      {Values: []string{"light", "dark", "auto"}},
	"config":     {FileGlob: "*.json,*.yaml,*.yml,.rendermdrc*"},
	"css":        {FileGlob: "*.css"},
	"output":     {FileGlob: "*.html"},
	"asset-path": {IsDir: true},
}

// buildRenderFlagSet creates a FlagSet with all render command flags.
func buildRenderFlagSet() *flag.FlagSet {
	return newRenderFlagSet(&renderFlags{})
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet.
func getCommands() []commandDef {
	renderFlags := extractFlagsFromFlagSet(buildRenderFlagSet())

	return []commandDef{
		{
			Name:        "render",
			Desc:        "Render markdown files",
			Flags:       renderFlags,
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name: "config",
			Desc: "Print the resolved configuration",
			Flags: []flagDef{
				{Long: "config", Short: "c", Type: flagFile, Desc: "rc file path", FileGlob: flagCompletionMeta["config"].FileGlob},
			},
		},
		{
			Name:  "doctor",
			Desc:  "Check browser and system setup",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "JSON output"}},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var buf bytes.Buffer
	commands := getCommands()

	switch shell {
	case ShellBash:
		writeBash(&buf, commands)
	case ShellZsh:
		writeZsh(&buf, commands)
	case ShellFish:
		writeFish(&buf, commands)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// commandNames returns the command names separated by spaces.
func commandNames(commands []commandDef) string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every spelling of the command's flags.
func flagWords(c commandDef) string {
	var words []string
	for _, f := range c.Flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// globs splits a comma separated glob list.
func globs(pattern string) []string {
	return strings.Split(pattern, ",")
}

// writeBash emits a bash completion function. Bare file arguments complete
// like the render command.
func writeBash(w *bytes.Buffer, commands []commandDef) {
	fmt.Fprintln(w, "# bash completion for rendermd")
	fmt.Fprintln(w, "_rendermd() {")
	fmt.Fprintln(w, `    local cur prev cmd`)
	fmt.Fprintln(w, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(w, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(w, `    cmd="${COMP_WORDS[1]}"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `    if [[ ${COMP_CWORD} -eq 1 && "${cur}" != -* ]]; then`)
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"${cur}\") $(compgen -f -X '!*.@(md|markdown)' -- \"${cur}\"))\n", commandNames(commands))
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)

	var render commandDef
	for _, c := range commands {
		if c.Name == "render" {
			render = c
		}
	}

	fmt.Fprintln(w, `    case "${prev}" in`)
	for _, f := range render.Flags {
		names := "--" + f.Long
		if f.Short != "" {
			names += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -W %q -- \"${cur}\")); return ;;\n", names, strings.Join(f.Values, " "))
		case flagFile:
			var exts []string
			for _, g := range globs(f.FileGlob) {
				if strings.HasPrefix(g, "*.") {
					exts = append(exts, strings.TrimPrefix(g, "*."))
				}
			}
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"${cur}\")); return ;;\n", names, strings.Join(exts, "|"))
		case flagDir:
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -d -- \"${cur}\")); return ;;\n", names)
		case flagInt, flagString:
			fmt.Fprintf(w, "        %s) return ;;\n", names)
		}
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w)

	fmt.Fprintln(w, `    case "${cmd}" in`)
	for _, c := range commands {
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -W %q -- \"${cur}\")) ;;\n", c.Name, strings.Join(c.Args, " "))
		case c.Name == "help":
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -W %q -- \"${cur}\")) ;;\n", c.Name, commandNames(commands))
		case len(c.Flags) > 0:
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -W %q -- \"${cur}\")", c.Name, flagWords(c))
			if c.TakesFiles {
				fmt.Fprint(w, " $(compgen -f -X '!*.@(md|markdown)' -- \"${cur}\")")
			}
			fmt.Fprintln(w, ") ;;")
		}
	}
	fmt.Fprintf(w, "        *) COMPREPLY=($(compgen -W %q -- \"${cur}\") $(compgen -f -X '!*.@(md|markdown)' -- \"${cur}\")) ;;\n", flagWords(render))
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -o filenames -F _rendermd rendermd")
}

// zshEscape escapes a description for a zsh _arguments entry.
func zshEscape(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`, "'", `'\''`, ":", `\:`)
	return r.Replace(s)
}

// zshSpec returns the _arguments entry of one flag.
func zshSpec(f flagDef) string {
	action := ""
	switch f.Type {
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"" + strings.Join(globs(f.FileGlob), " ") + "\""
	case flagDir:
		action = ":directory:_files -/"
	case flagInt, flagString:
		action = ":" + f.Long + ":"
	}

	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s%s%s'", f.Long, desc, action)
}

// writeZsh emits a zsh completion function.
func writeZsh(w *bytes.Buffer, commands []commandDef) {
	fmt.Fprintln(w, "#compdef rendermd")
	fmt.Fprintln(w)

	for _, c := range commands {
		fmt.Fprintf(w, "_rendermd_%s() {\n", c.Name)
		fmt.Fprintln(w, "    _arguments -s \\")
		for _, f := range c.Flags {
			fmt.Fprintf(w, "        %s \\\n", zshSpec(f))
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(w, "        '*:markdown file:_files -g \"%s\"'\n", strings.Join(globs(c.FilePattern), " "))
		case len(c.Args) > 0:
			fmt.Fprintf(w, "        '1:shell:(%s)'\n", strings.Join(c.Args, " "))
		case c.Name == "help":
			fmt.Fprintf(w, "        '1:command:(%s)'\n", commandNames(commands))
		default:
			fmt.Fprintln(w, "        '*: :'")
		}
		fmt.Fprintln(w, "}")
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "_rendermd() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range commands {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )) && [[ ${words[2]} != -* ]]; then")
	fmt.Fprintln(w, "        _describe 'command' commands")
	fmt.Fprintln(w, "        _files -g \"*.md *.markdown\"")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case ${words[2]} in")
	for _, c := range commands {
		fmt.Fprintf(w, "        %s)\n", c.Name)
		fmt.Fprintln(w, "            shift words; (( CURRENT-- ))")
		fmt.Fprintf(w, "            _rendermd_%s ;;\n", c.Name)
	}
	fmt.Fprintln(w, "        *) _rendermd_render ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, `compdef _rendermd rendermd`)
}

// fishEscape escapes a description for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// writeFish emits fish completion commands.
func writeFish(w *bytes.Buffer, commands []commandDef) {
	names := commandNames(commands)

	fmt.Fprintln(w, "# fish completion for rendermd")
	fmt.Fprintln(w, "complete -c rendermd -f")
	for _, c := range commands {
		fmt.Fprintf(w, "complete -c rendermd -n 'not __fish_seen_subcommand_from %s' -a %s -d '%s'\n", names, c.Name, fishEscape(c.Desc))
	}
	fmt.Fprintf(w, "complete -c rendermd -n 'not __fish_seen_subcommand_from %s' -F -a '(__fish_complete_suffix .md)'\n", names)

	for _, c := range commands {
		cond := "__fish_seen_subcommand_from " + c.Name
		if c.Name == "render" {
			// Flags apply to the implicit render command as well.
			cond = "not __fish_seen_subcommand_from config doctor completion version help"
		}

		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c rendermd -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -r -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -r -a '(__fish_complete_directories)'"
			case flagInt, flagString:
				line += " -r"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			fmt.Fprintln(w, line)
		}

		switch {
		case c.TakesFiles:
			fmt.Fprintf(w, "complete -c rendermd -n '__fish_seen_subcommand_from %s' -F -a '(__fish_complete_suffix .md)'\n", c.Name)
		case len(c.Args) > 0:
			fmt.Fprintf(w, "complete -c rendermd -n '__fish_seen_subcommand_from %s' -a '%s'\n", c.Name, strings.Join(c.Args, " "))
		case c.Name == "help":
			fmt.Fprintf(w, "complete -c rendermd -n '__fish_seen_subcommand_from help' -a '%s'\n", names)
		}
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rendermd completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(rendermd completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(rendermd completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    rendermd completion fish > ~/.config/fish/completions/rendermd.fish")
}
