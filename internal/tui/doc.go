/*
Package tui implements the terminal user interface for careerguide.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: tab bar, one form panel per tab and the modal state
  - Update: routes keys through the keybinds registry and applies settled requests
  - View: renders the active panel, its result region and the status bar

# Key Components

  - model.go: Model, messages and Update/View
  - init.go: construction and Run
  - panels.go: form panels and their result regions
  - keys.go: key routing per context (form, results, modal)
  - actions.go: side effects (submits, details, clipboard, call log)
  - render.go: main layout and status bar
  - modals.go, analytics_modal.go: details, call log and help modals

# Requests

Each panel owns a view controller whose sink is the panel's result region.
Submit renders the loading fragment immediately; the returned task runs as
a tea.Cmd off the UI goroutine and comes back as a settledMsg, which Update
applies. Applying is what writes the final fragment into the region, so all
sink writes happen on the UI goroutine.
*/
package tui
