package config

import "time"

// Defaults applied to fields left empty in the configuration file.
const (
	DefaultGoogleURL = "https://fonts.googleapis.com/css?family="
	DefaultFormat    = "woff"
	DefaultOutputDir = "."
	DefaultTimeout   = 30 * time.Second
)

// Config represents the ff-fonts configuration document.
type Config struct {
	Google []GoogleFont `yaml:"google" toml:"google"`
	Local  []LocalFont  `yaml:"local" toml:"local"`

	// InputDir is prepended verbatim to every LocalFont.File.
	// After loading it always ends with a path separator.
	InputDir  string `yaml:"input_dir,omitempty" toml:"input_dir"`
	OutputDir string `yaml:"output_dir,omitempty" toml:"output_dir"`

	// Remote fetch settings.
	GoogleURL string `yaml:"google_url,omitempty" toml:"google_url"`
	Format    string `yaml:"format,omitempty" toml:"format"`
	UserAgent string `yaml:"user_agent,omitempty" toml:"user_agent"`
	Timeout   string `yaml:"timeout,omitempty" toml:"timeout"`

	timeout time.Duration
}

// GoogleFont requests one Google Fonts family.
type GoogleFont struct {
	Name string `yaml:"name" toml:"name"`

	// Formats lists weight/style tokens such as "300" or "300i".
	// Order is kept as written.
	Formats []string `yaml:"formats,omitempty" toml:"formats"`
	Display string   `yaml:"display,omitempty" toml:"display"`
}

// LocalFont describes one font variant stored on disk.
type LocalFont struct {
	Name    string `yaml:"name" toml:"name"`
	File    string `yaml:"file" toml:"file"`
	Weight  string `yaml:"weight,omitempty" toml:"weight"`
	Style   string `yaml:"style,omitempty" toml:"style"`
	Display string `yaml:"display,omitempty" toml:"display"`
}

// FetchTimeout returns the parsed remote fetch timeout.
func (c *Config) FetchTimeout() time.Duration {
	if c.timeout == 0 {
		return DefaultTimeout
	}
	return c.timeout
}
