package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is everything apngasm needs for one run.  It can be loaded from a
// YAML file and is then overridden by any flags given on the command line.
type Config struct {
	InputDir    string `yaml:"input_dir" validate:"required"`
	Output      string `yaml:"output" validate:"required"`
	FPS         int    `yaml:"fps" validate:"min=1,max=120"`
	Loops       uint32 `yaml:"loops"`
	Strict      bool   `yaml:"strict"`
	KeepPalette bool   `yaml:"keep_palette"`
	Verbose     bool   `yaml:"verbose"`
	Quiet       bool   `yaml:"quiet" validate:"excluded_if=Verbose true"`
}

func defaultConfig() Config {
	return Config{
		Output: "output.apng",
		FPS:    24,
	}
}

// loadConfig reads a YAML config file on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the config once flags have been applied.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
