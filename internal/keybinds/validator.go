package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if len(r.Errors) == 0 && len(r.Warnings) == 0 {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding registries
type Validator struct {
	// reservedKeys must keep their action in the global context
	reservedKeys map[string]Action
	// typingContexts receive printable keys as text
	typingContexts map[Context]bool
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce,
		},
		typingContexts: map[Context]bool{
			ContextForm: true,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{}

	for _, context := range sortedContexts(registry) {
		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			action := bindings[key]

			if reserved, ok := v.reservedKeys[key]; ok && action != reserved {
				result.Errors = append(result.Errors, ValidationError{
					Type: "conflict", Context: context, Key: key,
					Message: fmt.Sprintf("reserved for %s, bound to %s", reserved, action),
				})
			}

			if v.typingContexts[context] && isPrintable(key) {
				result.Errors = append(result.Errors, ValidationError{
					Type: "invalid", Context: context, Key: key,
					Message: "printable keys are typed into form fields",
				})
			}

			if context != ContextGlobal {
				if global, ok := registry.bindings[ContextGlobal][key]; ok && global != action {
					result.Warnings = append(result.Warnings, ValidationError{
						Type: "warning", Context: context, Key: key,
						Message: fmt.Sprintf("shadows global binding (%s -> %s)", global, action),
					})
				}
			}
		}
	}

	return result
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// isPrintable reports whether key is a single visible character
func isPrintable(key string) bool {
	r := []rune(key)
	return len(r) == 1 && r[0] > ' ' && r[0] != 0x7f
}

func sortedContexts(registry *Registry) []Context {
	var out []Context
	for c := range registry.bindings {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys(bindings map[string]Action) []string {
	var out []string
	for k := range bindings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
