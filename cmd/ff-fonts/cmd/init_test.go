package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bianoble/ff-fonts/internal/config"
)

func TestInitCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "ff-fonts.yaml")

	// Override the global configPath used by the init command.
	old := configPath
	configPath = outPath
	defer func() { configPath = old }()

	initForce = false
	err := initCmd.RunE(initCmd, nil)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, err := config.Load(outPath)
	if err != nil {
		t.Fatalf("created config does not load: %v", err)
	}
	if len(cfg.Google) == 0 || len(cfg.Local) == 0 {
		t.Errorf("starter config should list google and local fonts: %+v", cfg)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "ff-fonts.yaml")

	if err := os.WriteFile(outPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	old := configPath
	configPath = outPath
	defer func() { configPath = old }()

	initForce = false
	err := initCmd.RunE(initCmd, nil)
	if err == nil {
		t.Fatal("expected error when file exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error should mention 'already exists': %v", err)
	}
}

func TestInitForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "ff-fonts.yaml")

	if err := os.WriteFile(outPath, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	old := configPath
	configPath = outPath
	defer func() { configPath = old }()

	initForce = true
	defer func() { initForce = false }()
	err := initCmd.RunE(initCmd, nil)
	if err != nil {
		t.Fatalf("init --force: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "old content" {
		t.Error("file was not overwritten")
	}
}
