package screens

import (
	"fmt"
	"strings"

	"arcade/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// NotFound is shown for locations no route matches.
type NotFound struct {
	location string
}

var _ ui.Screen = (*NotFound)(nil)

// NewNotFound creates the not-found page.
func NewNotFound() *NotFound {
	return &NotFound{}
}

// Init implements ui.Screen.
func (n *NotFound) Init() tea.Cmd {
	return nil
}

// Update implements ui.Screen.
func (n *NotFound) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ui.ActivatedMsg:
		n.location = msg.Location
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return ui.Redirect(PathHome)
		case "esc":
			return ui.Back()
		}
	}
	return nil
}

// Render implements ui.Screen.
func (n *NotFound) Render() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("Page not found"))
	b.WriteString("\n\n")
	b.WriteString(ui.Styles.Normal.Render(fmt.Sprintf("Nothing lives at %s.", n.location)))
	b.WriteString("\n\n")
	b.WriteString(ui.Styles.Hint.Render("enter home · esc back"))
	return ui.Styles.Box.Render(b.String())
}
