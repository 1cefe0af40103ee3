// Package config loads and validates the application configuration.
//
// Configuration comes from an optional YAML file layered over built-in
// defaults, so a bare binary works out of the box and a deployment only
// states what it changes.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fieldlearn/personas/internal/domain"
	"github.com/fieldlearn/personas/internal/workflow"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Temporal holds the connection settings for the Temporal server.
type Temporal struct {
	HostPort  string `yaml:"host_port" validate:"required"`
	Namespace string `yaml:"namespace" validate:"required"`
	TaskQueue string `yaml:"task_queue" validate:"required"`
}

// Ingest holds the dataset ingestion settings.
type Ingest struct {
	// Delimiter is the CSV field separator. Single character.
	Delimiter string `yaml:"delimiter" validate:"required,len=1"`
}

// Config is the full application configuration.
type Config struct {
	Engine   domain.Options `yaml:"engine" validate:"required"`
	Ingest   Ingest         `yaml:"ingest" validate:"required"`
	Temporal Temporal       `yaml:"temporal" validate:"required"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Engine: domain.DefaultOptions(),
		Ingest: Ingest{Delimiter: ","},
		Temporal: Temporal{
			HostPort:  "localhost:7233",
			Namespace: "default",
			TaskQueue: workflow.TaskQueue,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return c.Engine.Validate()
}

// Comma returns the CSV delimiter as a rune.
func (i Ingest) Comma() rune {
	return []rune(i.Delimiter)[0]
}
