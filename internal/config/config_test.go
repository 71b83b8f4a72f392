package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NT_HOME", "")
	os.Unsetenv("NT_HOME")
	return home
}

func TestLoad_Default(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(home, ".nt")
	if cfg.Home != want {
		t.Errorf("expected default home %q, got %q", want, cfg.Home)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	isolateHome(t)
	t.Setenv("NT_HOME", "/tmp/nt-env")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Home != "/tmp/nt-env" {
		t.Errorf("expected /tmp/nt-env, got %q", cfg.Home)
	}
}

func TestLoad_CLIFlagWins(t *testing.T) {
	isolateHome(t)
	t.Setenv("NT_HOME", "/tmp/nt-env")

	cfg, err := Load(CLIFlags{Home: "/tmp/nt-flag"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Home != "/tmp/nt-flag" {
		t.Errorf("CLI flag should override env, got %q", cfg.Home)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolateHome(t)

	configDir := filepath.Join(home, ".config", "nt")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	settings := Settings{Home: "/tmp/nt-file", Editor: "vim", Picker: "builtin"}
	data, _ := json.Marshal(settings)
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Home != "/tmp/nt-file" {
		t.Errorf("expected config file home, got %q", cfg.Home)
	}
	if cfg.Editor != "vim" || cfg.Picker != "builtin" {
		t.Errorf("config file values lost: %+v", cfg)
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load(CLIFlags{Home: "~/notes-home"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Home != filepath.Join(home, "notes-home") {
		t.Errorf("expected ~ expansion, got %q", cfg.Home)
	}
}

func TestEnsureHome(t *testing.T) {
	home := isolateHome(t)

	cfg := &Config{Home: filepath.Join(home, ".nt")}
	if err := cfg.EnsureHome(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Home, "notes")); err != nil {
		t.Errorf("notes dir should exist: %v", err)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolateHome(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(home, ".config", "nt", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file should exist: %v", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("config file should be valid JSON: %v", err)
	}
	if settings.Picker != "fzf" || settings.Searcher != "rg" {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}
