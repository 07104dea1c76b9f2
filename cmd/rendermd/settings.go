package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-rendermd/internal/config"
	"github.com/alnah/go-rendermd/internal/hints"
)

// settings is the outcome of merging rc file, environment and flags.
type settings struct {
	cfg        config.Config
	configPath string // rc file in use, empty when none was loaded
	assetPath  string
	workers    int
	warnings   []string
}

// resolveSettings merges the configuration sources.
// Priority: CLI flags > RENDERMD_* variables > rc file > defaults.
//
// An explicit rc path that does not exist is an error. An rc file that
// exists but does not parse only produces a warning, and its values are
// skipped.
func resolveSettings(flags *renderFlags, env *Environment) (*settings, error) {
	envCfg := loadEnvConfig()
	if err := envCfg.Overrides.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w%s", err, themeHint(err))
	}

	flagOverrides := flags.overrides()
	if err := flagOverrides.Validate(); err != nil {
		return nil, fmt.Errorf("%w%s", err, themeHint(err))
	}

	s := &settings{warnings: envCfg.Warnings}

	var fileOverrides config.Overrides
	explicit := flags.common.config
	if explicit == "" {
		explicit = envCfg.ConfigPath
	}

	if explicit != "" {
		o, err := config.LoadFile(explicit)
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.RCFileNames))
		case err != nil:
			s.warnings = append(s.warnings, err.Error()+hints.ForConfigParse(explicit))
		default:
			fileOverrides = o
			s.configPath = explicit
		}
	} else {
		o, path, warns := config.Discover(env.searchDirs())
		for _, w := range warns {
			s.warnings = append(s.warnings, w.Error())
		}
		fileOverrides = o
		s.configPath = path
	}

	s.cfg = config.Resolve(fileOverrides, envCfg.Overrides, flagOverrides)

	s.assetPath = flags.assets.assetPath
	if s.assetPath == "" {
		s.assetPath = envCfg.AssetPath
	}
	s.workers = flags.output.workers
	if s.workers == 0 {
		s.workers = envCfg.Workers
	}

	return s, nil
}

// themeHint lists the accepted themes when err is a theme error.
func themeHint(err error) string {
	if errors.Is(err, config.ErrInvalidTheme) {
		return hints.ForInvalidTheme()
	}
	return ""
}
