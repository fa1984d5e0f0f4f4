package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// pending holds the first key of a multi-key sequence (like 'gg')
	pending map[Context]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		pending:  make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keys for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unbind removes every key bound to action in context
func (r *Registry) Unbind(context Context, action Action) {
	for key, a := range r.bindings[context] {
		if a == action {
			delete(r.bindings[context], key)
		}
	}
}

// Match resolves key in context, falling back to the global context
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if action, ok := r.bindings[context][key]; ok {
		return action, true
	}
	if action, ok := r.bindings[ContextGlobal][key]; ok {
		return action, true
	}
	return "", false
}

// MatchMultiKey handles sequences like 'gg'. It returns the action,
// whether the match is complete and whether a sequence is pending.
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prev, ok := r.pending[context]; ok {
		delete(r.pending, context)
		action, ok := r.Match(context, prev+key)
		return action, ok, false
	}

	if r.startsSequence(context, key) {
		r.pending[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// startsSequence reports whether key is the first key of a bound
// multi-key sequence in context
func (r *Registry) startsSequence(context Context, key string) bool {
	if strings.Contains(key, "+") || len(key) != 1 {
		return false
	}
	for bound := range r.bindings[context] {
		if bound == key+key {
			return true
		}
	}
	return false
}

// ClearPending drops a half-typed sequence
func (r *Registry) ClearPending(context Context) {
	delete(r.pending, context)
}

// Keys returns the keys bound to action in context (or globally), sorted
func (r *Registry) Keys(context Context, action Action) []string {
	var keys []string
	for key, a := range r.bindings[context] {
		if a == action {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		for key, a := range r.bindings[ContextGlobal] {
			if a == action {
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// KeysString returns the keys bound to action for display
func (r *Registry) KeysString(context Context, action Action) string {
	keys := r.Keys(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, "/")
}

// ListBindings returns the bindings of context followed by the global ones,
// each group sorted by key
func (r *Registry) ListBindings(context Context) []Binding {
	var out []Binding
	for _, ctx := range []Context{context, ContextGlobal} {
		var group []Binding
		for key, action := range r.bindings[ctx] {
			group = append(group, Binding{Key: key, Action: action, Context: ctx})
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Key < group[j].Key })
		out = append(out, group...)
		if context == ContextGlobal {
			break
		}
	}
	return out
}
