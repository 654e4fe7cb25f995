package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsearch"
	"gopkg.in/yaml.v3"
)

// loadConfig builds a run configuration from defaults, an optional YAML
// file, and the shared command-line flags, in that order of precedence.
func loadConfig(cmd *cobra.Command) (*qsearch.Config, error) {
	cfg := qsearch.NewConfig()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
