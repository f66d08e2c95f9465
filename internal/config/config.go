// Package config resolves runtime settings: defaults, then the optional YAML
// config file, then QUESTA_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type ThemeConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

type RuntimeConfig struct {
	DBPath      string      `yaml:"db_path"`
	Ephemeral   bool        `yaml:"ephemeral"`
	ChatDelayMs int         `yaml:"chat_delay_ms"`
	Theme       ThemeConfig `yaml:"theme"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ChatDelayMs: 900,
	}
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "questa", "config.yaml"), nil
}

// LoadFile overlays the YAML file at path onto base. A missing file is fine;
// a present but malformed file is an error worth telling the user about.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func FromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("QUESTA_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("QUESTA_EPHEMERAL"); ok {
		cfg.Ephemeral = v
	}
	if v, ok := getEnvInt("QUESTA_CHAT_DELAY_MS"); ok && v >= 0 {
		cfg.ChatDelayMs = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTA_THEME_BG")); v != "" {
		cfg.Theme.Background = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTA_THEME_TEXT")); v != "" {
		cfg.Theme.Text = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
