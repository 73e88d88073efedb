package engine

import (
	"github.com/bianoble/ff-fonts/internal/config"
	"github.com/bianoble/ff-fonts/internal/fontface"
)

// InfoResult holds the resolved configuration for the info command.
type InfoResult struct {
	Version    string
	ConfigPath string
	QueryURL   string
	Format     string
	InputDir   string
	OutputDir  string
	Google     []config.GoogleFont
	Local      []LocalInfo
}

// LocalInfo describes one configured local font.
type LocalInfo struct {
	Name   string
	File   string
	Format string
	// Included reports whether the font renders to a rule.
	Included bool
}

// Info gathers configuration details without touching the network.
func Info(version, configPath string, cfg *config.Config, enc fontface.Encoder) *InfoResult {
	r := &InfoResult{
		Version:    version,
		ConfigPath: configPath,
		QueryURL:   fontface.QueryURL(cfg.Google, cfg.GoogleURL),
		Format:     cfg.Format,
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		Google:     cfg.Google,
	}

	for _, f := range cfg.Local {
		r.Local = append(r.Local, LocalInfo{
			Name:     f.Name,
			File:     f.File,
			Format:   fontface.Format(f.File),
			Included: fontface.Local(f, cfg.InputDir, enc) != "",
		})
	}

	return r
}
