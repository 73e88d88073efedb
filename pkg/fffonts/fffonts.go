// Package fffonts provides the public Go library API for ff-fonts.
//
// ff-fonts merges Google Fonts families and local font files into a
// single stylesheet of @font-face rules with inlined font data, and
// writes it as ff-fonts.<md5>.json.
//
// # Basic Usage
//
//	client, err := fffonts.New(fffonts.Options{ConfigPath: "ff-fonts.yaml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Build(ctx, fffonts.BuildOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Checksum)
package fffonts

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/bianoble/ff-fonts/internal/config"
	"github.com/bianoble/ff-fonts/internal/engine"
	"github.com/bianoble/ff-fonts/internal/fontface"
	"github.com/bianoble/ff-fonts/internal/source"
)

// DefaultConfigPath is used when Options.ConfigPath is empty.
const DefaultConfigPath = "ff-fonts.yaml"

// BuildOptions configures a build.
type BuildOptions struct {
	DryRun bool
}

// Builder produces the merged stylesheet record.
type Builder interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// Verifier checks persisted records.
type Verifier interface {
	Verify(paths []string) *VerifyResult
}

// Options configures an ff-fonts client.
type Options struct {
	// ConfigPath is the path to the config file. Default: "ff-fonts.yaml".
	ConfigPath string

	// OutputDir overrides output_dir from the config file.
	OutputDir string

	// Fetcher replaces the Google Fonts fetcher, mainly for tests.
	Fetcher source.Fetcher

	// Logger receives diagnostics. If nil, log.Default() is used.
	Logger *log.Logger
}

// Client is the main entry point for the ff-fonts library.
// It implements Builder and Verifier.
type Client struct {
	cfg     *config.Config
	fetcher source.Fetcher
	encoder *source.LocalEncoder
	logger  *log.Logger
}

// New loads the configuration and creates a Client.
func New(opts Options) (*Client, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = DefaultConfigPath
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = &source.GoogleFetcher{Timeout: cfg.FetchTimeout()}
	}

	return &Client{
		cfg:     cfg,
		fetcher: fetcher,
		encoder: &source.LocalEncoder{FS: source.OSFS{}},
		logger:  opts.Logger,
	}, nil
}

// Config returns the loaded configuration with defaults applied.
func (c *Client) Config() config.Config {
	return *c.cfg
}

// Build fetches, merges and writes the stylesheet record.
func (c *Client) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	eng := &engine.BuildEngine{
		Fetcher: c.fetcher,
		Encoder: c.encoder,
		FS:      source.OSFS{},
		Logger:  c.logger,
	}
	return eng.Build(ctx, *c.cfg, engine.BuildOptions{DryRun: opts.DryRun})
}

// Verify checks record files against their checksums.
func (c *Client) Verify(paths []string) *VerifyResult {
	return (&engine.VerifyEngine{}).Verify(paths)
}

// URL returns the Google Fonts query URL for the configured families.
func (c *Client) URL() string {
	return fontface.QueryURL(c.cfg.Google, c.cfg.GoogleURL)
}

// LocalCSS returns the @font-face rules for the configured local fonts.
func (c *Client) LocalCSS() string {
	return fontface.Locals(c.cfg.Local, c.cfg.InputDir, c.encoder)
}
