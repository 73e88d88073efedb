package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads an ff-fonts configuration file and fills in defaults.
// Relative input and output directories are resolved against the
// directory containing the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	if err := cfg.ApplyDefaults(filepath.Dir(abs)); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a configuration document. ext selects the syntax:
// ".yaml", ".yml" and ".json" are read as YAML, ".toml" as TOML.
// Defaults are not applied.
func Decode(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format '%s' — use .yaml, .yml, .json or .toml", ext)
	}

	return &cfg, nil
}

// ApplyDefaults fills empty fields and resolves relative directories
// against baseDir. Missing optional font fields are left empty; they
// are never an error.
func (c *Config) ApplyDefaults(baseDir string) error {
	if c.GoogleURL == "" {
		c.GoogleURL = DefaultGoogleURL
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}

	if c.InputDir == "" {
		c.InputDir = baseDir
	} else if !filepath.IsAbs(c.InputDir) {
		c.InputDir = filepath.Join(baseDir, c.InputDir)
	}
	if !strings.HasSuffix(c.InputDir, string(filepath.Separator)) {
		c.InputDir += string(filepath.Separator)
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(baseDir, c.OutputDir)
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", c.Timeout, err)
		}
		c.timeout = d
	}

	return nil
}
