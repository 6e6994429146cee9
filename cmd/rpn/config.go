package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// config holds command settings. Flags override values from the file.
type config struct {
	// Prompt is printed before each line read interactively.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb for results.
	Format string `yaml:"format"`
	// Color enables styled output.
	Color bool `yaml:"color"`
	// Postfix prints each expression's postfix program before its value.
	Postfix bool `yaml:"postfix"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Prompt:   "> ",
		Format:   "%g",
		Color:    true,
		LogLevel: "warn",
	}
}

// loadConfig reads a YAML config from r over the defaults. An empty document
// gives the defaults.
func loadConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// loadConfigFile reads the config at path, or returns the defaults if path
// is empty.
func loadConfigFile(path string) (config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	return loadConfig(f)
}

func (c config) validate() error {
	if strings.Count(c.Format, "%") != 1 {
		return fmt.Errorf("format %q must contain exactly one verb", c.Format)
	}
	return nil
}
