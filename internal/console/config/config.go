// Package config loads and persists the console's YAML configuration,
// including first-run creation of a default file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the console's on-disk configuration. The token is cached
// between runs so repeated invocations do not force a fresh login.
type Config struct {
	// BaseURL is the API server address.
	BaseURL string `yaml:"base_url"`

	// Email is the account used for login prompts.
	Email string `yaml:"email"`

	// Token is the last session's bearer token. Cleared by logout and
	// replaced on every successful login.
	Token string `yaml:"token,omitempty"`

	// UserID and Name identify the logged-in account, captured at login.
	UserID string `yaml:"user_id,omitempty"`
	Name   string `yaml:"name,omitempty"`

	// DefaultLeaveType pre-selects the leave type in the create form.
	// One of ANNUAL, SICK, UNPAID.
	DefaultLeaveType string `yaml:"default_leave_type"`

	// ReportDir is where exported PDF reports are written.
	ReportDir string `yaml:"report_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:          "http://127.0.0.1:8080",
		DefaultLeaveType: "ANNUAL",
		ReportDir:        ".",
	}
}

// Normalize fills in missing values so partially-filled configs from
// older versions still behave.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = "http://127.0.0.1:8080"
	}
	switch c.DefaultLeaveType {
	case "ANNUAL", "SICK", "UNPAID":
	default:
		c.DefaultLeaveType = "ANNUAL"
	}
	if c.ReportDir == "" {
		c.ReportDir = "."
	}
}

// Load reads the config at path, creating a default file on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg atomically (temp file + rename) with 0600 permissions;
// the file can hold a live bearer token.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".leavedesk-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// DefaultPath returns the per-user config location, honoring
// LEAVEDESK_CONFIG when set.
func DefaultPath() string {
	if p := os.Getenv("LEAVEDESK_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leavedesk.yaml"
	}
	return filepath.Join(home, ".config", "leavedesk", "config.yaml")
}
