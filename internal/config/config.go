package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

// Output formats for headless commands
const (
	OutputText = "text"
	OutputHTML = "html"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Race policies, see view.Policy
const (
	RaceLatest      = "latest"
	RaceLastSettled = "last-settled"
)

// DefaultBaseURL is where the backend listens out of the box
const DefaultBaseURL = "http://127.0.0.1:5000"

// Config holds application configuration
type Config struct {
	BaseURL    string `mapstructure:"base_url"`
	LogFile    string `mapstructure:"log_file"`
	Output     string `mapstructure:"output"`
	RacePolicy string `mapstructure:"race_policy"`
	Analytics  bool   `mapstructure:"analytics"`
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"base-url":    "base_url",
	"log-file":    "log_file",
	"output":      "output",
	"race-policy": "race_policy",
	"analytics":   "analytics",
}

// Dir returns ~/.config/careerguide
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "careerguide")
}

// KeybindsPath returns the keybinding override file in Dir
func KeybindsPath() string {
	return filepath.Join(Dir(), "keybinds.json")
}

// Load reads defaults, then the config file, then CAREERGUIDE_* env vars,
// then any changed flag in fs (which may be nil).
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("log_file", filepath.Join(Dir(), "careerguide.log"))
	v.SetDefault("output", OutputText)
	v.SetDefault("race_policy", RaceLatest)
	v.SetDefault("analytics", true)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("CAREERGUIDE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAREERGUIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, an explicit or broken one is not
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.LogFile = expandHome(c.LogFile)
	return c, nil
}

// Validate rejects settings the client cannot run with
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute http(s) URL", c.BaseURL)
	}

	switch c.Output {
	case OutputText, OutputHTML, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output %q must be one of text, html, json, yaml", c.Output)
	}

	switch c.RacePolicy {
	case RaceLatest, RaceLastSettled:
	default:
		return fmt.Errorf("race_policy %q must be %q or %q", c.RacePolicy, RaceLatest, RaceLastSettled)
	}

	return nil
}

// EnsureLogDir creates the directory holding the log file
func (c Config) EnsureLogDir() error {
	if err := os.MkdirAll(filepath.Dir(c.LogFile), DirPermissions); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// expandHome expands a leading ~/ to the home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
