package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-patterns/internal/config"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	body := "width: 40\noutput_dir: /tmp/demo\ncolor: NEVER\nboard: chess\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Config{Width: 40, OutputDir: "/tmp/demo", Color: config.ColorNever, Board: "chess"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("color: always\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != config.DefaultWidth || cfg.Board != config.BoardAll || cfg.Color != config.ColorAlways {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero width":  "width: 0\n",
		"bad color":   "color: rainbow\n",
		"unknown key": "colour: auto\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Parse([]byte(body)); err == nil {
				t.Fatalf("expected error for %q", body)
			}
		})
	}

	_, err := config.Parse([]byte("width: -3\n"))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
