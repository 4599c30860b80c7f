package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"coursegen/pkg/template"
)

const (
	defaultDirPerm  = "0755"
	defaultFilePerm = "0644"
)

type Config struct {
	Template    string            `yaml:"template"`
	TemplateDir string            `yaml:"template_dir,omitempty"`
	Permissions PermissionsConfig `yaml:"permissions"`
	History     HistoryConfig     `yaml:"history"`
}

// PermissionsConfig holds octal mode strings such as "0755".
type PermissionsConfig struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// DirMode parses the directory permission.
func (p PermissionsConfig) DirMode() (os.FileMode, error) {
	return parsePerm(p.Dir, 0755)
}

// FileMode parses the file permission.
func (p PermissionsConfig) FileMode() (os.FileMode, error) {
	return parsePerm(p.File, 0644)
}

func parsePerm(s string, def os.FileMode) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	// Always octal: "755" and "0755" mean the same mode.
	u, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission %q: %w", s, err)
	}
	if u > 0777 {
		return 0, fmt.Errorf("invalid permission %q: out of range", s)
	}
	return os.FileMode(u), nil
}

func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".coursegen"
	}
	return filepath.Join(homeDir, ".coursegen")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// HistoryPath returns where run history is stored.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(DefaultConfigDir(), "history.db")
}

// LoadConfig reads configPath, falling back to DefaultConfigPath when empty.
// A missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Template == "" {
		cfg.Template = template.CourseTemplateName
	}
	if cfg.Permissions.Dir == "" {
		cfg.Permissions.Dir = defaultDirPerm
	}
	if cfg.Permissions.File == "" {
		cfg.Permissions.File = defaultFilePerm
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports malformed permission strings.
func (c *Config) Validate() error {
	if _, err := c.Permissions.DirMode(); err != nil {
		return fmt.Errorf("permissions.dir: %w", err)
	}
	if _, err := c.Permissions.FileMode(); err != nil {
		return fmt.Errorf("permissions.file: %w", err)
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Template: template.CourseTemplateName,
		Permissions: PermissionsConfig{
			Dir:  defaultDirPerm,
			File: defaultFilePerm,
		},
		History: HistoryConfig{
			Enabled: false,
		},
	}
}

// WriteDefaultConfig writes the default config to configPath unless a file
// already exists there. It reports whether a file was written.
func WriteDefaultConfig(configPath string) (bool, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return false, fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
