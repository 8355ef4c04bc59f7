package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := DefaultConfig()

	if cfg.Dim() != def.Dim() {
		t.Errorf("Dim() = %v, expected %v", cfg.Dim(), def.Dim())
	}
	if strings.Join(cfg.Robots, ",") != strings.Join(def.Robots, ",") {
		t.Errorf("Robots = %v, expected %v", cfg.Robots, def.Robots)
	}
	if cfg.SSH.Address != def.SSH.Address || cfg.IdleTimeout() != def.IdleTimeout() {
		t.Errorf("SSH = %+v, expected %+v", cfg.SSH, def.SSH)
	}
	if cfg.DBPath != def.DBPath {
		t.Errorf("DBPath = %q, expected %q", cfg.DBPath, def.DBPath)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  rows: 8\n  columns: 8\nrobots: [blue]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dim() != geom.Dim(8, 8) {
		t.Errorf("Dim() = %v, expected 8x8", cfg.Dim())
	}
	ids, err := cfg.RobotIDs()
	if err != nil || len(ids) != 1 {
		t.Errorf("RobotIDs() = %v, %v", ids, err)
	}
	// Unset values keep their defaults
	if cfg.SSH.Address != ":23235" {
		t.Errorf("SSH.Address = %q, expected default", cfg.SSH.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	tests := map[string]string{
		"broken.yaml":  "board: [",
		"tiny.yaml":    "board: {rows: 1, columns: 4}\n",
		"robots.yaml":  "robots: [red, purple]\n",
		"crowded.yaml": "board: {rows: 2, columns: 2}\nrobots: []\n",
	}
	for name, content := range tests {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%s) should fail", name)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Board = BoardConfig{Rows: 2, Columns: 2}
	cfg.Robots = []string{"red", "green", "blue", "yellow"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("four robots on 2x2 should fit: %v", err)
	}

	cfg.Robots = []string{"red", "red"}
	if err := cfg.Validate(); err == nil {
		t.Error("duplicate robots should fail")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("./local.db")
	if err != nil || got != "./local.db" {
		t.Errorf("ExpandHome(relative) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x/y.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandHome(~/x/y.db) = %q", got)
	}
}
