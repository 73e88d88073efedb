package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bianoble/ff-fonts/internal/bundle"
	"github.com/bianoble/ff-fonts/internal/config"
	"github.com/bianoble/ff-fonts/internal/fontface"
	"github.com/bianoble/ff-fonts/internal/source"
	"github.com/bianoble/ff-fonts/internal/transform"
)

// BuildEngine orchestrates a build: remote fetch, local encoding,
// merge, checksum, tagging and write.
type BuildEngine struct {
	Fetcher source.Fetcher
	Encoder fontface.Encoder
	FS      source.FS
	Logger  *log.Logger
}

// BuildOptions configures a build.
type BuildOptions struct {
	DryRun bool
}

// Build runs the pipeline for cfg. Steps run strictly in order. A fetch
// failure aborts the build before anything is written. The checksum is
// taken over the merged stylesheet before tagging.
func (e *BuildEngine) Build(ctx context.Context, cfg config.Config, opts BuildOptions) (*BuildResult, error) {
	logger := e.logger()

	url := fontface.QueryURL(cfg.Google, cfg.GoogleURL)
	local := fontface.Locals(cfg.Local, cfg.InputDir, e.encoder())
	logger.Debug("local fonts encoded", "fonts", len(cfg.Local), "bytes", len(local))
	if len(cfg.Local) > 0 && local == "" {
		logger.Warn("no local font produced a rule", "input_dir", cfg.InputDir)
	}

	var remote, tempFile string
	if len(cfg.Google) > 0 {
		logger.Debug("fetching remote fonts", "url", url, "format", cfg.Format)
		res, err := e.fetcher(cfg).Fetch(ctx, url, source.FetchOptions{Format: cfg.Format, UserAgent: cfg.UserAgent})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRemoteFetch, err)
		}
		remote = transform.AddDisplay(res.Value, cfg.Google)
		tempFile = res.TempFile
	}

	merged := remote + local
	checksum := bundle.Checksum(merged)
	value := transform.Tag(merged)

	if tempFile != "" {
		if err := e.fs().Remove(tempFile); err != nil {
			return nil, fmt.Errorf("removing temp file %s: %w", tempFile, err)
		}
	}

	result := &BuildResult{
		Checksum:    checksum,
		Path:        filepath.Join(cfg.OutputDir, bundle.FileName(checksum)),
		URL:         url,
		RemoteBytes: len(remote),
		LocalBytes:  len(local),
	}

	if opts.DryRun {
		logger.Info("dry run, nothing written", "path", result.Path)
		return result, nil
	}

	path, err := bundle.Save(cfg.OutputDir, bundle.Record{MD5: checksum, Value: value})
	if err != nil {
		return nil, err
	}
	result.Path = path
	result.Written = true

	logger.Info("bundle written", "path", path, "remote", result.RemoteBytes, "local", result.LocalBytes)
	return result, nil
}

func (e *BuildEngine) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

func (e *BuildEngine) fetcher(cfg config.Config) source.Fetcher {
	if e.Fetcher == nil {
		return &source.GoogleFetcher{Timeout: cfg.FetchTimeout()}
	}
	return e.Fetcher
}

func (e *BuildEngine) encoder() fontface.Encoder {
	if e.Encoder == nil {
		return &source.LocalEncoder{FS: e.fs()}
	}
	return e.Encoder
}

func (e *BuildEngine) fs() source.FS {
	if e.FS == nil {
		return source.OSFS{}
	}
	return e.FS
}
