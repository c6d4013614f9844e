package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv(EnvCorpus, "")
	t.Setenv(EnvPlatform, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if len(cfg.Corpora) != 0 {
		t.Errorf("Corpora = %v, want empty", cfg.Corpora)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv(EnvCorpus, "")
	t.Setenv(EnvPlatform, "")

	cfg := &Config{
		Corpora:  []string{"/etc/mime.extra"},
		Platform: "darwin",
		LogLevel: "debug",
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, ".config", "mt", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Platform != cfg.Platform {
		t.Errorf("Platform = %s, want %s", loaded.Platform, cfg.Platform)
	}
	if loaded.LogLevel != cfg.LogLevel {
		t.Errorf("LogLevel = %s, want %s", loaded.LogLevel, cfg.LogLevel)
	}
	if len(loaded.Corpora) != 1 || loaded.Corpora[0] != cfg.Corpora[0] {
		t.Errorf("Corpora = %v, want %v", loaded.Corpora, cfg.Corpora)
	}
}

func TestEnvPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg := &Config{Platform: "linux"}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvPlatform, "windows")
	t.Setenv(EnvCorpus, "/a/one.types"+string(os.PathListSeparator)+"/b/two.types")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Platform != "windows" {
		t.Errorf("Platform = %s, env should win over file", loaded.Platform)
	}
	if len(loaded.Corpora) != 2 {
		t.Errorf("Corpora = %v, want two entries from env", loaded.Corpora)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"log_level", "log_level"},
		{"log-level", "log_level"},
		{"LogLevel", "log_level"},
		{"loglevel", "log_level"},
		{"No-Color", "no_color"},
		{"corpus", "corpora"},
		{"  platform ", "platform"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.input); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}

	if !cfg.Set("log-level", "debug") {
		t.Fatal("Set(log-level) rejected")
	}
	if got, ok := cfg.Get("loglevel"); !ok || got != "debug" {
		t.Errorf("Get(loglevel) = (%q, %v), want (debug, true)", got, ok)
	}

	if !cfg.Set("no_color", "true") || !cfg.NoColor {
		t.Error("Set(no_color, true) did not stick")
	}

	if cfg.Set("unknown_key", "x") {
		t.Error("Set(unknown_key) should be rejected")
	}
	if _, ok := cfg.Get("unknown_key"); ok {
		t.Error("Get(unknown_key) should be rejected")
	}
}
