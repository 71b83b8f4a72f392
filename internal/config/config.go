package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the resolved application configuration. It is threaded
// explicitly into whatever needs it; there is no package-level default.
type Config struct {
	Home     string // note store home directory
	Editor   string // editor binary; empty means $EDITOR, then nano
	Picker   string // "fzf" or "builtin"
	Searcher string // "rg" or "builtin"
}

// Settings represents the config file structure.
type Settings struct {
	Home     string `json:"home,omitempty"`
	Editor   string `json:"editor,omitempty"`
	Picker   string `json:"picker,omitempty"`
	Searcher string `json:"searcher,omitempty"`
}

// CLIFlags holds parsed CLI flags.
type CLIFlags struct {
	Home string
}

// Load resolves configuration with priority: CLI flags > NT_HOME > config
// file > default (~/.nt).
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{}

	if configPath, err := getConfigPath(); err == nil {
		if settings, err := loadConfigFile(configPath); err == nil {
			cfg.Home = settings.Home
			cfg.Editor = settings.Editor
			cfg.Picker = settings.Picker
			cfg.Searcher = settings.Searcher
		}
	}

	if env := os.Getenv("NT_HOME"); env != "" {
		cfg.Home = env
	}

	if flags.Home != "" {
		cfg.Home = flags.Home
	}

	if cfg.Home == "" {
		defaultHome, err := DefaultHome()
		if err != nil {
			return nil, err
		}
		cfg.Home = defaultHome
	}
	cfg.Home = expandPath(cfg.Home)

	return cfg, nil
}

// DefaultHome returns the default note store location.
func DefaultHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".nt"), nil
}

// EnsureHome creates the home directory and its notes subdirectory.
func (c *Config) EnsureHome() error {
	return os.MkdirAll(filepath.Join(c.Home, "notes"), 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't
// exist.
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultHome, err := DefaultHome()
	if err != nil {
		return err
	}

	settings := Settings{
		Home:     defaultHome,
		Picker:   "fzf",
		Searcher: "rg",
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nt", "config.json"), nil
}

func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
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
