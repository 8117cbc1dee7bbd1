package main

import (
	"flag"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// config holds the CLI settings. Values can come from an optional YAML
// file; flags explicitly set on the command line win over file values.
type config struct {
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	JSON    bool   `yaml:"json"`
	Sniff   bool   `yaml:"sniff"`
	Verbose bool   `yaml:"verbose"`
}

func defaultConfig() config {
	return config{}
}

// load reads and parses a YAML config file into c.
func (c *config) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// apply overlays command line values on top of the file config.
func (c *config) apply(fs *flag.FlagSet, formatTag, output string, asJSON, sniff, verbose bool) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["format"] {
		c.Format = formatTag
	}
	if set["o"] {
		c.Output = output
	}
	if set["json"] {
		c.JSON = asJSON
	}
	if set["sniff"] {
		c.Sniff = sniff
	}
	if set["v"] {
		c.Verbose = verbose
	}
}
