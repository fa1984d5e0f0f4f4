package mock

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultRoutes []byte

// DefaultConfig returns the built-in fixtures covering every backend endpoint
func DefaultConfig() (*Config, error) {
	return parseConfig(defaultRoutes, ".yaml")
}

// LoadConfig loads a fixture configuration from a .yaml, .yml or .json file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseConfig(data, strings.ToLower(filepath.Ext(path)))
}

func parseConfig(data []byte, ext string) (*Config, error) {
	var config Config

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (use .yaml, .yml, or .json)", ext)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// validateConfig checks every route and compiles regex paths
func validateConfig(config *Config) error {
	if len(config.Routes) == 0 {
		return fmt.Errorf("no routes defined")
	}

	for i := range config.Routes {
		route := &config.Routes[i]
		if route.Method == "" {
			return fmt.Errorf("route %d: method is required", i)
		}
		if route.Path == "" {
			return fmt.Errorf("route %d: path is required", i)
		}

		switch route.PathType {
		case "", PathExact, PathPrefix:
		case PathRegex:
			re, err := regexp.Compile(route.Path)
			if err != nil {
				return fmt.Errorf("route %d: invalid path regex: %w", i, err)
			}
			route.pathRe = re
		default:
			return fmt.Errorf("route %d: pathType must be 'exact', 'prefix', or 'regex'", i)
		}
	}

	return nil
}
