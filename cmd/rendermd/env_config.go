package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-rendermd/internal/config"
)

// envPrefix marks the environment variables rendermd reads.
const envPrefix = "RENDERMD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring an rc file.
type envConfig struct {
	Overrides  config.Overrides // RENDERMD_THEME, RENDERMD_TOC, ...
	ConfigPath string           // RENDERMD_CONFIG: rc file path
	AssetPath  string           // RENDERMD_ASSET_PATH: custom asset directory
	Workers    int              // RENDERMD_WORKERS: parallel workers

	// Warnings lists values that were set but could not be parsed.
	Warnings []string
}

// boolEnvVars maps boolean variables to the override they set.
var boolEnvVars = []struct {
	name  string
	field func(*config.Overrides) **bool
}{
	{"RENDERMD_TOC", func(o *config.Overrides) **bool { return &o.TOC }},
	{"RENDERMD_LINE_NUMBERS", func(o *config.Overrides) **bool { return &o.LineNumbers }},
	{"RENDERMD_COPY_BUTTON", func(o *config.Overrides) **bool { return &o.CopyButton }},
	{"RENDERMD_MATH", func(o *config.Overrides) **bool { return &o.Math }},
	{"RENDERMD_MERMAID", func(o *config.Overrides) **bool { return &o.Mermaid }},
	{"RENDERMD_SYNTAX_HIGHLIGHT", func(o *config.Overrides) **bool { return &o.SyntaxHighlight }},
	{"RENDERMD_AUTO_CLEANUP", func(o *config.Overrides) **bool { return &o.AutoCleanup }},
}

// envAssetPath names the asset override directory.
const envAssetPath = "RENDERMD_ASSET_PATH"

// knownEnvVars lists valid RENDERMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RENDERMD_THEME":            true,
	"RENDERMD_TOC":              true,
	"RENDERMD_LINE_NUMBERS":     true,
	"RENDERMD_COPY_BUTTON":      true,
	"RENDERMD_MATH":             true,
	"RENDERMD_MERMAID":          true,
	"RENDERMD_SYNTAX_HIGHLIGHT": true,
	"RENDERMD_AUTO_CLEANUP":     true,
	"RENDERMD_CLEANUP_DELAY":    true,
	"RENDERMD_CSS":              true,
	"RENDERMD_CONFIG":           true,
	envAssetPath:                true,
	"RENDERMD_WORKERS":          true,
	"RENDERMD_CONTAINER":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Empty variables are treated as unset.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("RENDERMD_CONFIG"),
		AssetPath:  os.Getenv(envAssetPath),
	}

	if theme := os.Getenv("RENDERMD_THEME"); theme != "" {
		cfg.Overrides.Theme = &theme
	}
	if css := os.Getenv("RENDERMD_CSS"); css != "" {
		cfg.Overrides.CSS = &css
	}

	for _, v := range boolEnvVars {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring %s=%q: not a boolean", v.name, raw))
			continue
		}
		*v.field(&cfg.Overrides) = &b
	}

	if raw := os.Getenv("RENDERMD_CLEANUP_DELAY"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil {
			cfg.Overrides.CleanupDelay = &ms
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring RENDERMD_CLEANUP_DELAY=%q: not a number", raw))
		}
	}

	if raw := os.Getenv("RENDERMD_WORKERS"); raw != "" {
		if w, err := strconv.Atoi(raw); err == nil && w > 0 {
			cfg.Workers = w
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring RENDERMD_WORKERS=%q: not a positive number", raw))
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized RENDERMD_* variables.
// Helps catch typos like RENDERMD_THEMES instead of RENDERMD_THEME.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
