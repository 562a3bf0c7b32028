package ui

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the app to activate Path. Replace overwrites the current
// history entry instead of pushing a new one (redirects). Status, when set,
// is shown once the new screen is active.
type NavigateMsg struct {
	Path    string
	Replace bool
	Status  string
}

// BackMsg moves to the previous history entry.
type BackMsg struct{}

// ForwardMsg moves to the next history entry.
type ForwardMsg struct{}

// StatusMsg shows a one-line message under the active screen until the next
// navigation.
type StatusMsg struct {
	Text string
	Err  bool
}

// Navigate returns a command following a link to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// Redirect returns a command replacing the current entry with path.
func Redirect(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path, Replace: true} }
}

// RedirectWithStatus is Redirect plus a status line message.
func RedirectWithStatus(path, status string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path, Replace: true, Status: status} }
}

// Back returns a command for BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Forward returns a command for ForwardMsg.
func Forward() tea.Cmd {
	return func() tea.Msg { return ForwardMsg{} }
}

// Status returns a command showing text in the status line.
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// StatusErr returns a command showing err in the status line.
func StatusErr(err error) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: err.Error(), Err: true} }
}
