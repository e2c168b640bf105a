// Package models defines data structures for configuration and extraction output.
package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultConfigName = "ai-digest.yaml"

// Config holds runtime configuration for the extract and images commands.
// Values come from an optional YAML file; CLI flags override them.
type Config struct {
	InputDir string   `yaml:"input_dir"`
	Pattern  string   `yaml:"pattern"`
	Exclude  []string `yaml:"exclude,omitempty"`
	Output   string   `yaml:"output"`

	PublicDir string `yaml:"public_dir"`
	Logo      string `yaml:"logo"`
	Font      string `yaml:"font,omitempty"`
	TitleZh   string `yaml:"title_zh"`
	TitleEn   string `yaml:"title_en"`

	// HistoryDB is the run history database. Empty means next to the binary.
	HistoryDB string `yaml:"history_db,omitempty"`
}

// Defaults returns the configuration used when no file or flag sets a value.
func Defaults() *Config {
	return &Config{
		InputDir:  ".",
		Pattern:   "*.md",
		Output:    filepath.Join("public", "data.json"),
		PublicDir: "public",
		Logo:      filepath.Join("public", "logo.png"),
		TitleZh:   "边角聊 AI 讨论组",
		TitleEn:   "LeftoverTalk AI Discussion Group",
	}
}

// LoadConfig reads a YAML config file on top of Defaults.
// A missing file is not an error when path is the default name.
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && filepath.Base(path) == DefaultConfigName {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("config error: 'pattern' must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("config error: invalid 'pattern' %q: %w", c.Pattern, err)
	}
	for _, ex := range c.Exclude {
		if _, err := filepath.Match(ex, ""); err != nil {
			return fmt.Errorf("config error: invalid 'exclude' pattern %q: %w", ex, err)
		}
	}
	if c.Output == "" {
		return fmt.Errorf("config error: 'output' must not be empty")
	}
	return nil
}
