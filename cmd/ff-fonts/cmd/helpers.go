package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/bianoble/ff-fonts/internal/config"
	"github.com/bianoble/ff-fonts/internal/engine"
	"github.com/bianoble/ff-fonts/internal/source"
)

// loadConfig reads the config file and applies the --output override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return cfg, nil
}

// newLogger creates a timestamped logger whose level follows the
// --verbose and --quiet flags.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// newBuildEngine wires the Google fetcher and local encoder.
func newBuildEngine(cfg *config.Config, logger *log.Logger) *engine.BuildEngine {
	fs := source.OSFS{}
	return &engine.BuildEngine{
		Fetcher: &source.GoogleFetcher{Timeout: cfg.FetchTimeout()},
		Encoder: &source.LocalEncoder{FS: fs},
		FS:      fs,
		Logger:  logger,
	}
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

func humanSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
