// Package config loads resumeview settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"resumeview/internal/layout"
	"resumeview/internal/section"
)

const (
	// DefaultAccent is the accent colour used when none is configured.
	DefaultAccent = "#239CE2"
	// DefaultColumnWidth is the preferred width of one column in cells.
	DefaultColumnWidth = 44
	// MinColumnWidth is the narrowest column the renderer will lay out.
	MinColumnWidth = 24
)

// Config represents the application configuration
type Config struct {
	Accent      string            `yaml:"accent" env:"RESUMEVIEW_ACCENT"`
	ColumnWidth int               `yaml:"column_width" env:"RESUMEVIEW_COLUMN_WIDTH"`
	Markdown    bool              `yaml:"markdown" env:"RESUMEVIEW_MARKDOWN"`
	LogFile     string            `yaml:"log_file" env:"RESUMEVIEW_LOG_FILE"`
	StorePath   string            `yaml:"store_path" env:"RESUMEVIEW_STORE"`
	Sections    map[string]string `yaml:"sections"`
	Layout      LayoutConfig      `yaml:"layout"`
	KeyMappings KeyMappings       `yaml:"key_mappings"`
}

// LayoutConfig optionally overrides the initial column partition.
// Setting either column replaces the default partition.
type LayoutConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config file at path, or at the default location when path
// is empty. A missing default file yields the defaults; a missing explicit
// path is an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.applyDefaults()

	if _, err := config.SectionNames(); err != nil {
		return nil, fmt.Errorf("config sections: %w", err)
	}
	if _, err := config.NewEngine(); err != nil {
		return nil, fmt.Errorf("config layout: %w", err)
	}
	return config, nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "resumeview", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "resumeview", "config.yaml"), nil
}

// SectionNames returns the section-to-document-key mapping.
func (c *Config) SectionNames() (section.Names, error) {
	return section.ParseNames(c.Sections)
}

// NewEngine returns a layout engine using the configured partition, or the
// default one when no override is set.
func (c *Config) NewEngine() (*layout.Engine, error) {
	if len(c.Layout.Left) == 0 && len(c.Layout.Right) == 0 {
		return layout.New(), nil
	}
	left, err := section.ParseList(c.Layout.Left)
	if err != nil {
		return nil, fmt.Errorf("left column: %w", err)
	}
	right, err := section.ParseList(c.Layout.Right)
	if err != nil {
		return nil, fmt.Errorf("right column: %w", err)
	}
	return layout.NewWithColumns(left, right)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Accent == "" {
		c.Accent = DefaultAccent
	}
	if c.ColumnWidth <= 0 {
		c.ColumnWidth = DefaultColumnWidth
	}
	if c.ColumnWidth < MinColumnWidth {
		c.ColumnWidth = MinColumnWidth
	}
	if c.LogFile == "" {
		c.LogFile = defaultDataPath("logs", "resumeview.log")
	}
	if c.StorePath == "" {
		c.StorePath = defaultDataPath("resumes.db")
	}
	c.KeyMappings.applyDefaults()
}

// defaultDataPath joins elem under ~/.resumeview, or the working directory
// when the home directory is unknown.
func defaultDataPath(elem ...string) string {
	base := ".resumeview"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".resumeview")
	}
	return filepath.Join(append([]string{base}, elem...)...)
}
