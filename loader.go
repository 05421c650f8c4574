package cursor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a config file on top of DefaultConfig and validates the
// result. The format follows the extension (.toml, .json, .yaml, .yml);
// anything else is tried as TOML, then JSON, then YAML. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes data in the format named by ext (with or without the
// leading dot) on top of DefaultConfig and validates the result.
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()

	switch ext {
	case ".toml", "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json", "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml", "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := autoDetectAndParse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// autoDetectAndParse tries each supported format in turn. Each attempt
// starts again from the defaults so a partial decode does not leak through.
func autoDetectAndParse(data []byte, cfg *Config) error {
	try := DefaultConfig()
	if _, err := toml.Decode(string(data), &try); err == nil {
		*cfg = try
		return nil
	}

	try = DefaultConfig()
	if err := json.Unmarshal(data, &try); err == nil {
		*cfg = try
		return nil
	}

	try = DefaultConfig()
	if err := yaml.Unmarshal(data, &try); err != nil {
		return fmt.Errorf("unrecognized config format")
	}
	*cfg = try
	return nil
}
