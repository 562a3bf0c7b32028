// Package ui is the Bubble Tea shell around the navigation table.
//
// Core abstractions:
//   - Screen: a page bound to a route, with its own init, update and render
//   - AppModel: owns the router and the keybind registry; adapts to tea.Model
//   - KeybindRegistry/KeyHandler: spacemacs-style leader bindings (SPC g, ...)
//
// Screens never touch the router directly. They return NavigateMsg, BackMsg
// or ForwardMsg commands and the AppModel applies them.
package ui
