package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"discard/internal/expiry"
)

const (
	ViewAll  = "all"
	ViewSoon = "soon"
)

// Config holds the resolved application configuration
type Config struct {
	DataDir       string
	ExportDir     string
	DefaultExpiry expiry.Bucket
	DefaultView   string
}

// Settings represents the config file structure
type Settings struct {
	DataDir       string `yaml:"data_dir,omitempty"`
	ExportDir     string `yaml:"export_dir,omitempty"`
	DefaultExpiry string `yaml:"default_expiry,omitempty"`
	DefaultView   string `yaml:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir   string
	ExportDir string
	View      string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	defaultDataDir, err := GetDefaultDataDir()
	if err != nil {
		return nil, err
	}
	defaultExportDir, err := GetDefaultExportDir()
	if err != nil {
		return nil, err
	}

	settings := Settings{
		DataDir:       defaultDataDir,
		ExportDir:     defaultExportDir,
		DefaultExpiry: expiry.DefaultBucket.String(),
		DefaultView:   ViewAll,
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileSettings, err := loadConfigFile(configPath); err == nil {
			settings.merge(*fileSettings)
		}
	}

	// Priority 2: Environment variables override config file
	settings.merge(Settings{
		DataDir:       os.Getenv("DISCARD_DATA_DIR"),
		ExportDir:     os.Getenv("DISCARD_EXPORT_DIR"),
		DefaultExpiry: os.Getenv("DISCARD_DEFAULT_EXPIRY"),
		DefaultView:   os.Getenv("DISCARD_DEFAULT_VIEW"),
	})

	// Priority 1: CLI flags override everything
	settings.merge(Settings{
		DataDir:     flags.DataDir,
		ExportDir:   flags.ExportDir,
		DefaultView: flags.View,
	})

	bucket, err := expiry.ParseBucket(settings.DefaultExpiry)
	if err != nil {
		return nil, fmt.Errorf("default_expiry: %w", err)
	}

	view := strings.ToLower(settings.DefaultView)
	if view != ViewAll && view != ViewSoon {
		return nil, fmt.Errorf("default_view: unknown view %q (use %s or %s)", settings.DefaultView, ViewAll, ViewSoon)
	}

	cfg := &Config{
		DataDir:       expandPath(settings.DataDir),
		ExportDir:     expandPath(settings.ExportDir),
		DefaultExpiry: bucket,
		DefaultView:   view,
	}

	return cfg, nil
}

// merge overwrites every field that is set in other
func (s *Settings) merge(other Settings) {
	if other.DataDir != "" {
		s.DataDir = other.DataDir
	}
	if other.ExportDir != "" {
		s.ExportDir = other.ExportDir
	}
	if other.DefaultExpiry != "" {
		s.DefaultExpiry = other.DefaultExpiry
	}
	if other.DefaultView != "" {
		s.DefaultView = other.DefaultView
	}
}

// GetDefaultDataDir returns the default directory for notes and logs
func GetDefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".discard"), nil
}

// GetDefaultExportDir returns the default cards folder
func GetDefaultExportDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Desktop", "DisCard Cards"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "discard", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDataDir creates the data directory if it is missing
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	settings := Settings{
		DataDir:       "~/.discard",
		ExportDir:     "~/Desktop/DisCard Cards",
		DefaultExpiry: expiry.DefaultBucket.String(),
		DefaultView:   ViewAll,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
