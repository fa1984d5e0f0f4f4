package keybinds

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config is the user's keybinding override file (keybinds.json). Each
// section maps an action to comma-separated keys, e.g. "copy_to_clipboard": "y,c".
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Form    map[string]string `json:"form,omitempty"`
	Results map[string]string `json:"results,omitempty"`
	Modal   map[string]string `json:"modal,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextForm:    c.Form,
		ContextResults: c.Results,
		ContextModal:   c.Modal,
	}
}

// ApplyConfig replaces the keys of every action the config mentions
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		for actionStr, keyList := range section {
			action := Action(actionStr)
			if !action.IsKnown() {
				return fmt.Errorf("%s: unknown action %q", context, actionStr)
			}

			keys := splitKeys(keyList)
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("%s.%s: %w", context, actionStr, err)
				}
			}

			registry.Unbind(context, action)
			registry.RegisterMultiple(context, keys, action)
		}
	}
	return nil
}

func splitKeys(list string) []string {
	var keys []string
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// LoadOrDefault returns the default registry with the user's overrides
// from path applied, if that file exists
func LoadOrDefault(path string) (*Registry, error) {
	registry := NewDefaultRegistry()

	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return registry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	if result := NewValidator().ValidateRegistry(registry); result.HasErrors() {
		return nil, fmt.Errorf("invalid keybindings:\n%s", result)
	}

	return registry, nil
}
