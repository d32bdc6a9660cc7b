package config

import (
	"os"
	"path/filepath"
	"testing"

	"discard/internal/expiry"
)

// setHome isolates the test from the real home directory and config file
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DISCARD_DATA_DIR", "")
	t.Setenv("DISCARD_EXPORT_DIR", "")
	t.Setenv("DISCARD_DEFAULT_EXPIRY", "")
	t.Setenv("DISCARD_DEFAULT_VIEW", "")
	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "discard")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Default(t *testing.T) {
	home := setHome(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != filepath.Join(home, ".discard") {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.ExportDir != filepath.Join(home, "Desktop", "DisCard Cards") {
		t.Errorf("unexpected export dir %q", cfg.ExportDir)
	}
	if cfg.DefaultExpiry != expiry.Hour {
		t.Errorf("expected default expiry 1 hour, got %s", cfg.DefaultExpiry)
	}
	if cfg.DefaultView != ViewAll {
		t.Errorf("expected default view 'all', got %q", cfg.DefaultView)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := setHome(t)
	writeConfigFile(t, home, "data_dir: ~/notes\ndefault_expiry: 1 week\ndefault_view: soon\n")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != filepath.Join(home, "notes") {
		t.Errorf("expected expanded data dir, got %q", cfg.DataDir)
	}
	if cfg.DefaultExpiry != expiry.Week {
		t.Errorf("expected 1 week, got %s", cfg.DefaultExpiry)
	}
	if cfg.DefaultView != ViewSoon {
		t.Errorf("expected soon view, got %q", cfg.DefaultView)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	home := setHome(t)
	writeConfigFile(t, home, "data_dir: /tmp/from-file\n")
	t.Setenv("DISCARD_DATA_DIR", "/tmp/from-env")
	t.Setenv("DISCARD_DEFAULT_EXPIRY", "30m")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/tmp/from-env" {
		t.Errorf("expected env to override file, got %q", cfg.DataDir)
	}
	if cfg.DefaultExpiry != expiry.ThirtyMinutes {
		t.Errorf("expected 30 minutes, got %s", cfg.DefaultExpiry)
	}
}

func TestLoad_DefaultViewLayers(t *testing.T) {
	home := setHome(t)
	writeConfigFile(t, home, "default_view: all\n")
	t.Setenv("DISCARD_DEFAULT_VIEW", "soon")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultView != ViewSoon {
		t.Errorf("expected env to override file, got %q", cfg.DefaultView)
	}

	cfg, err = Load(CLIFlags{View: "all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultView != ViewAll {
		t.Errorf("expected flag to override env, got %q", cfg.DefaultView)
	}

	t.Setenv("DISCARD_DEFAULT_VIEW", "calendar")
	if _, err := Load(CLIFlags{}); err == nil {
		t.Error("expected an error for an unknown view from the environment")
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	setHome(t)
	t.Setenv("DISCARD_DATA_DIR", "/tmp/from-env")

	cfg, err := Load(CLIFlags{DataDir: "/tmp/from-cli", ExportDir: "/tmp/cards", View: "soon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.DataDir != "/tmp/from-cli" {
		t.Errorf("expected /tmp/from-cli, got %q", cfg.DataDir)
	}
	if cfg.ExportDir != "/tmp/cards" {
		t.Errorf("expected /tmp/cards, got %q", cfg.ExportDir)
	}
	if cfg.DefaultView != ViewSoon {
		t.Errorf("expected soon, got %q", cfg.DefaultView)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setHome(t)

	t.Setenv("DISCARD_DEFAULT_EXPIRY", "forever")
	if _, err := Load(CLIFlags{}); err == nil {
		t.Error("expected error for unknown expiry")
	}

	t.Setenv("DISCARD_DEFAULT_EXPIRY", "")
	if _, err := Load(CLIFlags{View: "calendar"}); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestLoad_BrokenConfigFileIgnored(t *testing.T) {
	home := setHome(t)
	writeConfigFile(t, home, "data_dir: [unterminated\n")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, ".discard") {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := setHome(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(home, ".config", "discard", "config.yaml")
	settings, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("could not read generated config: %v", err)
	}
	if settings.DefaultExpiry != "1 hour" {
		t.Errorf("expected default expiry in file, got %q", settings.DefaultExpiry)
	}

	// A second call must not overwrite user edits
	if err := os.WriteFile(path, []byte("default_view: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "default_view: soon\n" {
		t.Errorf("config file was overwritten: %q", content)
	}
}

func TestEnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	cfg := &Config{DataDir: dir}
	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected directory %s to exist", dir)
	}
}
