// Package cli drives the file conversion pipeline for the attrex commands.
package cli

import (
	"log/slog"

	"github.com/odxtools/attrex/internal/config"
	"github.com/odxtools/attrex/internal/logging"
)

// Options is the merged configuration for a convert or check run.
type Options struct {
	// Globs are doublestar patterns naming the view files to process.
	Globs []string

	// Excludes filter discovered files out; populated from config.
	Excludes []string

	// Test makes the run a dry run: diffs go to stdout, files are untouched.
	Test bool

	// Check disables writing entirely and only reports conversion problems.
	Check bool

	// Jobs bounds how many files are processed concurrently. The transpiler
	// itself is pure; parallelism lives here in the driver.
	Jobs int

	// AttrsAttr is the source attribute name (normally "attrs").
	AttrsAttr string

	// ConfigPath is an explicit config file, empty for the default lookup.
	ConfigPath string

	Debug bool
}

// resolve overlays the config file under the explicitly set CLI values and
// returns the ready-to-run options plus logger.
func (o Options) resolve() (Options, *slog.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return o, nil, err
	}

	if len(o.Globs) == 0 {
		o.Globs = cfg.Include
	}
	if len(o.Excludes) == 0 {
		o.Excludes = cfg.Exclude
	}
	if o.AttrsAttr == "" {
		o.AttrsAttr = cfg.AttrsAttribute
	}
	if o.Jobs <= 0 {
		o.Jobs = cfg.Jobs
	}
	if o.Jobs <= 0 {
		o.Jobs = 1
	}
	o.Test = o.Test || cfg.Test

	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}
	return o, logging.New(level), nil
}
