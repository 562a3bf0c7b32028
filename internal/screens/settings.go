package screens

import (
	"fmt"
	"strings"

	"arcade/internal/score"
	"arcade/internal/store"
	"arcade/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDifficulty
	fieldCount
)

// Settings edits the player name and difficulty.
type Settings struct {
	store *store.Store

	name       textinput.Model
	difficulty score.Difficulty
	field      int
}

var _ ui.Screen = (*Settings)(nil)

// NewSettings creates the settings page backed by st.
func NewSettings(st *store.Store) *Settings {
	in := textinput.New()
	in.Placeholder = "player name"
	in.CharLimit = 24
	in.Width = 24
	in.Prompt = ""
	return &Settings{store: st, name: in}
}

// Init implements ui.Screen. It reloads the saved settings.
func (s *Settings) Init() tea.Cmd {
	var cmds []tea.Cmd
	cur, err := s.store.Settings()
	if err != nil {
		cmds = append(cmds, ui.StatusErr(fmt.Errorf("load settings: %w", err)))
	}
	s.name.SetValue(cur.Player)
	s.name.CursorEnd()
	s.difficulty = cur.Difficulty
	cmds = append(cmds, s.focus(fieldName))
	return tea.Batch(cmds...)
}

// CapturingInput implements ui.InputCapturer.
func (s *Settings) CapturingInput() bool {
	return s.field == fieldName
}

func (s *Settings) focus(field int) tea.Cmd {
	s.field = (field + fieldCount) % fieldCount
	if s.field == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

// Update implements ui.Screen.
func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return cmd
	}
	switch k.String() {
	case "tab", "down":
		return s.focus(s.field + 1)
	case "shift+tab", "up":
		return s.focus(s.field - 1)
	case "enter":
		return s.save()
	case "esc":
		return ui.Back()
	}
	if s.field == fieldDifficulty {
		switch k.String() {
		case "left", "h":
			s.difficulty = s.difficulty.Prev()
		case "right", "l":
			s.difficulty = s.difficulty.Next()
		}
		return nil
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return cmd
}

func (s *Settings) save() tea.Cmd {
	v := s.values()
	if err := s.store.SaveSettings(v); err != nil {
		return ui.StatusErr(err)
	}
	return ui.Status(fmt.Sprintf("Saved: %s on %s", strings.TrimSpace(v.Player), v.Difficulty))
}

// values returns the edited, unsaved settings.
func (s *Settings) values() store.Settings {
	return store.Settings{Player: s.name.Value(), Difficulty: s.difficulty}
}

// Render implements ui.Screen.
func (s *Settings) Render() string {
	label := func(field int, text string) string {
		if s.field == field {
			return ui.Styles.Selected.Render("› " + text)
		}
		return ui.Styles.Muted.Render("  " + text)
	}

	levels := make([]string, len(score.Difficulties))
	for i, d := range score.Difficulties {
		name := fmt.Sprintf("%s (1–%d)", d, d.Max())
		if d == s.difficulty {
			levels[i] = ui.Styles.Selected.Render("[" + name + "]")
		} else {
			levels[i] = ui.Styles.Muted.Render(" " + name + " ")
		}
	}

	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(label(fieldName, "Player     ") + s.name.View())
	b.WriteString("\n")
	b.WriteString(label(fieldDifficulty, "Difficulty ") + strings.Join(levels, " "))
	b.WriteString("\n\n")
	b.WriteString(ui.Styles.Hint.Render("tab switch field · ←/→ difficulty · enter save · esc back"))
	return b.String()
}
