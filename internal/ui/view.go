package ui

import tea "github.com/charmbracelet/bubbletea"

// Screen is a page bound to a route. Screens are long-lived: the navigation
// table holds one instance per route, Init is called each time the route
// becomes active, and Update mutates the screen in place.
type Screen interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	Render() string
}

// InputCapturer is implemented by screens that own the keyboard while a text
// field is focused. While CapturingInput is true the leader key and
// single-key bindings are not interpreted.
type InputCapturer interface {
	CapturingInput() bool
}

func capturing(s Screen) bool {
	c, ok := s.(InputCapturer)
	return ok && c.CapturingInput()
}
