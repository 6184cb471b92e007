package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DuplicatePolicy decides what happens when the same system is registered
// twice under its automatic label.
type DuplicatePolicy string

const (
	// DuplicateWarn logs a warning and keeps the existing registration.
	DuplicateWarn DuplicatePolicy = "warn"
	// DuplicateError rejects the second registration with an error.
	DuplicateError DuplicatePolicy = "error"
)

// Config carries the tunable policies of the runtime.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Registry RegistryConfig `yaml:"registry"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type RegistryConfig struct {
	// DuplicatePolicy selects warn-and-skip or hard-error behavior for
	// repeated automatic registration.
	DuplicatePolicy DuplicatePolicy `yaml:"duplicate_policy"`
	// StrictCallbacks controls deferred callback commands: when true, a
	// callback command naming an unknown label panics; when false it is
	// logged and dropped.
	StrictCallbacks *bool `yaml:"strict_callbacks"`
}

// Default returns the configuration used when no file is supplied:
// info-level logs, warn-and-skip duplicates, strict callback commands.
func Default() Config {
	strict := true
	return Config{
		Log:      LogConfig{Level: "info"},
		Registry: RegistryConfig{DuplicatePolicy: DuplicateWarn, StrictCallbacks: &strict},
	}
}

// Load reads a YAML configuration, filling in defaults for anything omitted.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration from disk.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

func (c Config) validate() error {
	switch c.Registry.DuplicatePolicy {
	case DuplicateWarn, DuplicateError:
	default:
		return fmt.Errorf("config: unknown duplicate_policy %q", c.Registry.DuplicatePolicy)
	}
	return nil
}

// Strict reports the effective StrictCallbacks value.
func (c RegistryConfig) Strict() bool {
	if c.StrictCallbacks == nil {
		return true
	}
	return *c.StrictCallbacks
}
