/*
Package keybinds provides customizable keyboard binding management for the
career guidance TUI.

# Contexts

  - Global: bindings available everywhere (ctrl+c, tab switching, focus)
  - Form: a form field has focus; printable keys go to the text input
  - Results: the active tab's result region has focus
  - Modal: the details, call log and help modals

A key bound in a specific context shadows the global binding.

# Configuration File Format

Overrides live in keybinds.json next to config.yaml. Each section maps an
action to a comma-separated key list, replacing that action's defaults:

	{
	  "version": "1",
	  "results": {
	    "copy_to_clipboard": "y,c",
	    "go_to_top": "gg,home"
	  },
	  "modal": {
	    "close_modal": "esc"
	  }
	}

# Validation

ctrl+c is reserved for force quit. Printable keys cannot be bound in the
form context, where they are typed. Shadowing a global key is a warning.

# Multi-Key Sequences

"gg" is matched with MatchMultiKey: the first g is held as pending and the
second completes the sequence. Any other key drops the pending g.
*/
package keybinds
