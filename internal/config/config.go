package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the grove configuration
type Config struct {
	// Rendering
	Theme         string `json:"theme" yaml:"theme"`
	Enumerator    string `json:"enumerator" yaml:"enumerator"`
	MarkdownStyle string `json:"markdown_style" yaml:"markdown_style"`

	// Logging
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`

	// Stress workload
	Workers    int `json:"workers" yaml:"workers"`
	Operations int `json:"operations" yaml:"operations"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:         "dark",
		Enumerator:    "rounded",
		MarkdownStyle: "dark",
		LogLevel:      "info",
		LogFormat:     "text",
		Workers:       8,
		Operations:    1000,
	}
}

// Validate checks values that cannot be fixed up by defaults
func (c *Config) Validate() error {
	switch c.Enumerator {
	case "rounded", "default":
	default:
		return fmt.Errorf("invalid enumerator %q: want rounded or default", c.Enumerator)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want text or json", c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Operations < 0 {
		return fmt.Errorf("operations must not be negative, got %d", c.Operations)
	}
	return nil
}

// Manager handles configuration loading and saving
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a configuration manager for the given file. Files
// ending in .yaml or .yml are read and written as YAML, anything else as JSON.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		config:     DefaultConfig(),
	}
}

// DefaultPath returns the config file location inside projectPath
func DefaultPath(projectPath string) string {
	return filepath.Join(projectPath, ".grove", "config.json")
}

// Path returns the file the manager reads and writes
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk. A missing file leaves the
// defaults in place.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if m.isYAML() {
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	} else if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(config)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if m.isYAML() {
		data, err = yaml.Marshal(m.config)
	} else {
		data, err = json.MarshalIndent(m.config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	updated := *m.config
	switch key {
	case "theme":
		updated.Theme = value
	case "enumerator":
		updated.Enumerator = value
	case "markdown_style":
		updated.MarkdownStyle = value
	case "log_level":
		updated.LogLevel = value
	case "log_format":
		updated.LogFormat = value
	case "workers", "operations":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		if key == "workers" {
			updated.Workers = n
		} else {
			updated.Operations = n
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	m.config = &updated
	return m.Save()
}

func (m *Manager) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(m.configPath))
	return ext == ".yaml" || ext == ".yml"
}

// expandEnvVars expands environment variables in config values
func (m *Manager) expandEnvVars(config *Config) {
	config.Theme = expandString(config.Theme)
	config.Enumerator = expandString(config.Enumerator)
	config.MarkdownStyle = expandString(config.MarkdownStyle)
	config.LogLevel = expandString(config.LogLevel)
	config.LogFormat = expandString(config.LogFormat)
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func expandString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
