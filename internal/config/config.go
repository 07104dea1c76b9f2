package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-rendermd/internal/fileutil"
	"github.com/alnah/go-rendermd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound      = errors.New("config file not found")
	ErrConfigParse         = errors.New("failed to parse config")
	ErrInvalidTheme        = errors.New("invalid theme")
	ErrInvalidCleanupDelay = errors.New("invalid cleanup delay")
)

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Cleanup delay bounds in milliseconds. The maximum is the longest delay a
// time.Duration can hold.
const (
	DefaultCleanupDelay       = 60000
	MaxCleanupDelay     int64 = math.MaxInt64 / int64(time.Millisecond)
)

// RCFileNames lists the rc-file names tried in each search directory, in order.
var RCFileNames = []string{
	".rendermdrc",
	".rendermdrc.json",
	".rendermdrc.yaml",
	".rendermdrc.yml",
}

// Config is the fully resolved render configuration. Every field is populated:
// a Config only comes from DefaultConfig or Resolve.
type Config struct {
	Theme           string `yaml:"theme"`
	TOC             bool   `yaml:"toc"`
	LineNumbers     bool   `yaml:"lineNumbers"` // advisory, not wired into highlighting
	CopyButton      bool   `yaml:"copyButton"`
	Math            bool   `yaml:"math"`
	Mermaid         bool   `yaml:"mermaid"`
	SyntaxHighlight bool   `yaml:"syntaxHighlight"`
	AutoCleanup     bool   `yaml:"autoCleanup"`
	CleanupDelay    int    `yaml:"cleanupDelay"` // milliseconds
	CSS             string `yaml:"css"`          // extra stylesheet path (empty = none)
}

// Overrides is one configuration source. A nil field means the source does
// not set it and the earlier value is kept.
type Overrides struct {
	Theme           *string `yaml:"theme"`
	TOC             *bool   `yaml:"toc"`
	LineNumbers     *bool   `yaml:"lineNumbers"`
	CopyButton      *bool   `yaml:"copyButton"`
	Math            *bool   `yaml:"math"`
	Mermaid         *bool   `yaml:"mermaid"`
	SyntaxHighlight *bool   `yaml:"syntaxHighlight"`
	AutoCleanup     *bool   `yaml:"autoCleanup"`
	CleanupDelay    *int    `yaml:"cleanupDelay"`
	CSS             *string `yaml:"css"`
}

// DefaultConfig returns the built-in defaults: auto theme, every feature on,
// one minute cleanup delay.
func DefaultConfig() Config {
	return Config{
		Theme:           ThemeAuto,
		TOC:             true,
		LineNumbers:     true,
		CopyButton:      true,
		Math:            true,
		Mermaid:         true,
		SyntaxHighlight: true,
		AutoCleanup:     true,
		CleanupDelay:    DefaultCleanupDelay,
	}
}

// Resolve merges sources over the defaults. Sources are applied in order, so
// a later source wins over an earlier one for every field it sets.
func Resolve(sources ...Overrides) Config {
	cfg := DefaultConfig()
	for _, src := range sources {
		src.applyTo(&cfg)
	}
	return cfg
}

func (o Overrides) applyTo(cfg *Config) {
	if o.Theme != nil {
		cfg.Theme = strings.ToLower(*o.Theme)
	}
	if o.TOC != nil {
		cfg.TOC = *o.TOC
	}
	if o.LineNumbers != nil {
		cfg.LineNumbers = *o.LineNumbers
	}
	if o.CopyButton != nil {
		cfg.CopyButton = *o.CopyButton
	}
	if o.Math != nil {
		cfg.Math = *o.Math
	}
	if o.Mermaid != nil {
		cfg.Mermaid = *o.Mermaid
	}
	if o.SyntaxHighlight != nil {
		cfg.SyntaxHighlight = *o.SyntaxHighlight
	}
	if o.AutoCleanup != nil {
		cfg.AutoCleanup = *o.AutoCleanup
	}
	if o.CleanupDelay != nil {
		cfg.CleanupDelay = *o.CleanupDelay
	}
	if o.CSS != nil {
		cfg.CSS = *o.CSS
	}
}

// Validate checks the theme and the cleanup delay.
func (c Config) Validate() error {
	if err := validateTheme(c.Theme); err != nil {
		return err
	}
	return validateCleanupDelay(c.CleanupDelay)
}

// Validate checks only the fields this source sets.
func (o Overrides) Validate() error {
	if o.Theme != nil {
		if err := validateTheme(*o.Theme); err != nil {
			return err
		}
	}
	if o.CleanupDelay != nil {
		if err := validateCleanupDelay(*o.CleanupDelay); err != nil {
			return err
		}
	}
	return nil
}

func validateTheme(theme string) error {
	switch strings.ToLower(theme) {
	case ThemeLight, ThemeDark, ThemeAuto:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be light, dark, or auto)", ErrInvalidTheme, theme)
	}
}

func validateCleanupDelay(ms int) error {
	if ms < 0 || int64(ms) > MaxCleanupDelay {
		return fmt.Errorf("%w: %d (must be between 0 and %d ms)", ErrInvalidCleanupDelay, ms, MaxCleanupDelay)
	}
	return nil
}

// LoadFile reads one rc file. Unknown keys are ignored; a file that does not
// parse or carries out-of-range values returns an error wrapping ErrConfigParse.
func LoadFile(path string) (Overrides, error) {
	f, err := os.Open(path) // #nosec G304 -- rc path from a fixed search list or the user
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Overrides{}, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	var o Overrides
	if err := yamlutil.Decode(f, &o); err != nil {
		return Overrides{}, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := o.Validate(); err != nil {
		return Overrides{}, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}
	return o, nil
}

// Discover tries every rc file name in every directory, in order, and returns
// the first file that loads. Files that exist but fail to load are reported
// as warnings and skipped; with no usable file the returned Overrides is
// empty, which resolves to the defaults.
func Discover(dirs []string) (o Overrides, path string, warnings []error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range RCFileNames {
			candidate := filepath.Join(dir, name)
			if !fileutil.FileExists(candidate) {
				continue
			}
			loaded, err := LoadFile(candidate)
			if err != nil {
				warnings = append(warnings, err)
				continue
			}
			return loaded, candidate, warnings
		}
	}
	return Overrides{}, "", warnings
}

// SearchDirs returns the rc-file search directories: the working directory,
// then the user's home directory. Unavailable directories are omitted.
func SearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
