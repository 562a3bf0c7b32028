package screens

import (
	"strings"

	"arcade/internal/ui"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// homeLink implements list.Item for a menu entry.
type homeLink struct {
	title string
	path  string
}

func (l homeLink) FilterValue() string { return l.title }
func (l homeLink) Title() string       { return l.title }
func (l homeLink) Description() string { return l.path }

// Home is the landing page: a menu of links to the other pages.
type Home struct {
	list list.Model
}

var _ ui.Screen = (*Home)(nil)

// NewHome creates the landing page.
func NewHome() *Home {
	items := []list.Item{
		homeLink{title: "Play", path: PathGame},
		homeLink{title: "Settings", path: PathSettings},
		homeLink{title: "High scores", path: PathHighScores},
	}
	l := list.New(items, ui.NewCompactListDelegate(), 40, len(items)+4)
	l.Title = "Guess the Number"
	l.Styles.Title = ui.Styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &Home{list: l}
}

// Init implements ui.Screen.
func (h *Home) Init() tea.Cmd {
	return nil
}

// Update implements ui.Screen.
func (h *Home) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.list.SetWidth(msg.Width)
		return nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if path := h.selected(); path != "" {
				return ui.Navigate(path)
			}
			return nil
		}
	}
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return cmd
}

// selected returns the path of the highlighted link.
func (h *Home) selected() string {
	if item, ok := h.list.SelectedItem().(homeLink); ok {
		return item.path
	}
	return ""
}

// Render implements ui.Screen.
func (h *Home) Render() string {
	var b strings.Builder
	b.WriteString(h.list.View())
	b.WriteString("\n")
	b.WriteString(ui.Styles.Hint.Render("↑/↓ select · enter open · q quit"))
	return b.String()
}
