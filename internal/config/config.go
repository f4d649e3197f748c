// Package config loads the optional .attrex.yaml project file. CLI flags
// always win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when no
// --config flag is given.
const DefaultFile = ".attrex.yaml"

// Config is the on-disk project configuration.
type Config struct {
	// AttrsAttribute is the source attribute holding the legacy domain
	// dict. Odoo calls it "attrs"; forks occasionally rename it.
	AttrsAttribute string `yaml:"attrs_attribute"`

	// Include are doublestar globs of view files to rewrite when the CLI
	// gets no path arguments.
	Include []string `yaml:"include"`

	// Exclude globs filter discovered files out.
	Exclude []string `yaml:"exclude"`

	// Jobs bounds how many files are rewritten concurrently.
	Jobs int `yaml:"jobs"`

	// Test makes every run a dry run, as if --test was passed.
	Test bool `yaml:"test"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		AttrsAttribute: "attrs",
		Jobs:           1,
	}
}

// Load reads path and overlays it on Default. A missing file at the default
// location is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.AttrsAttribute == "" {
		cfg.AttrsAttribute = "attrs"
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
