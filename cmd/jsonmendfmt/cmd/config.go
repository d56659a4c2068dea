package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional jsonmendfmt.yaml config file's shape. It carries
// defaults that flags can still override; a command line with no --config
// runs against the zero Config.
type Config struct {
	// DefaultPattern is the regex json-matching falls back to when invoked
	// with no --pattern flag.
	DefaultPattern string `yaml:"defaultPattern"`
}

// loadConfig reads and parses path as YAML. An empty path is not an error:
// it yields the zero Config, matching the CLI's "config is optional"
// contract.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
