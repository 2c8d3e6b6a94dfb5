package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTool       = "cargo"
	DefaultLogLevel   = "info"
	DefaultRelayGrace = 2 * time.Second
)

// HostConfig is the on-disk makectl configuration.
type HostConfig struct {
	Tool       string `yaml:"tool"`
	Workdir    string `yaml:"workdir"`
	LogLevel   string `yaml:"log_level"`
	RelayGrace string `yaml:"relay_grace"`
}

// Tool describes how the external build tool is invoked.
type Tool struct {
	Binary     string
	Dir        string
	RelayGrace time.Duration
}

// Settings is the resolved configuration after defaults and env overrides.
type Settings struct {
	Tool     Tool
	LogLevel string
	Path     string
}

// configPath mirrors the lookup order of the other devkit tools:
// MAKECTL_CONFIG, then the user config dir, then ~/.config.
func configPath() string {
	path := strings.TrimSpace(os.Getenv("MAKECTL_CONFIG"))
	if path != "" {
		return path
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "makectl", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "makectl", "config.yaml")
	}
	return ""
}

// ReadHostConfig loads the config file. A missing file yields an empty config.
func ReadHostConfig() (HostConfig, string, error) {
	var cfg HostConfig
	path := configPath()
	if path == "" {
		return cfg, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, path, nil
		}
		return cfg, path, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, path, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, path, nil
}

// Load reads the host config and applies MAKECTL_* overrides and defaults.
func Load() (Settings, error) {
	cfg, path, err := ReadHostConfig()
	if err != nil {
		return Settings{}, err
	}
	return Resolve(cfg, path)
}

// Resolve applies environment overrides and defaults to cfg.
func Resolve(cfg HostConfig, path string) (Settings, error) {
	s := Settings{
		Tool: Tool{
			Binary:     firstNonEmpty(os.Getenv("MAKECTL_TOOL"), cfg.Tool, DefaultTool),
			Dir:        firstNonEmpty(os.Getenv("MAKECTL_WORKDIR"), cfg.Workdir),
			RelayGrace: DefaultRelayGrace,
		},
		LogLevel: firstNonEmpty(os.Getenv("MAKECTL_LOG_LEVEL"), cfg.LogLevel, DefaultLogLevel),
		Path:     path,
	}
	if raw := firstNonEmpty(os.Getenv("MAKECTL_RELAY_GRACE"), cfg.RelayGrace); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("relay_grace: %w", err)
		}
		if d <= 0 {
			return Settings{}, fmt.Errorf("relay_grace must be positive, got %s", raw)
		}
		s.Tool.RelayGrace = d
	}
	return s, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
