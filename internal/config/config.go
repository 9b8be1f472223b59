package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config holds run settings that can live in a file instead of on the
// command line. Flags given explicitly win over file values.
type Config struct {
	Verbose      bool   `yaml:"verbose" json:"verbose"`
	Color        bool   `yaml:"color" json:"color"`
	LogFile      string `yaml:"log_file" json:"log_file"`
	SkipComments bool   `yaml:"skip_comments" json:"skip_comments"`
	Progress     bool   `yaml:"progress" json:"progress"`
}

func Default() *Config {
	return &Config{
		SkipComments: true,
	}
}

// Load reads path as YAML, or as JSON with comments when the extension is
// .json or .jsonc. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config yaml: %w", err)
		}
	}

	return cfg, nil
}
