// Package config loads the client configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so it reads as "30s" in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config is the client-side configuration. Every field has a working
// default; the file and all of its fields are optional.
type Config struct {
	ServerURL string   `yaml:"server_url"`
	Timeout   Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is present,
// pointing at a local development backend.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:8000/api/v1",
		Timeout:   Duration(30 * time.Second),
	}
}

// DefaultDir returns the per-user state directory (~/.conectavoz).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".conectavoz"), nil
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = Default().ServerURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Default().Timeout
	}

	return cfg, nil
}
