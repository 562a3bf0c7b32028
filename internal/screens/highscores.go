package screens

import (
	"fmt"
	"strconv"
	"strings"

	"arcade/internal/score"
	"arcade/internal/store"
	"arcade/internal/ui"
	"arcade/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// playerWidth is the player column width; longer names are clipped.
const playerWidth = 12

// HighScores shows the ranked board.
type HighScores struct {
	store   *store.Store
	table   table.Model
	entries []score.Entry
	err     error
}

var _ ui.Screen = (*HighScores)(nil)

// NewHighScores creates the high-score page backed by st.
func NewHighScores(st *store.Store) *HighScores {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Player", Width: playerWidth},
			{Title: "Level", Width: 7},
			{Title: "Tries", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "When", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(score.BoardSize+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(ui.Styles.Title.GetForeground()).Bold(true)
	styles.Selected = ui.Styles.Selected
	t.SetStyles(styles)
	return &HighScores{store: st, table: t}
}

// Init implements ui.Screen. It reloads the board.
func (h *HighScores) Init() tea.Cmd {
	board, err := h.store.Scores()
	h.err = err
	h.entries = board.Top(score.BoardSize)
	rows := make([]table.Row, len(h.entries))
	for i, e := range h.entries {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			textutil.Truncate(e.Player, playerWidth),
			e.Difficulty.String(),
			strconv.Itoa(e.Attempts),
			strconv.Itoa(e.Score),
			e.At.Local().Format("2006-01-02 15:04"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
	return nil
}

// Entries returns the entries currently shown.
func (h *HighScores) Entries() []score.Entry {
	return h.entries
}

// Update implements ui.Screen.
func (h *HighScores) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "p":
			return ui.Navigate(PathGame)
		case "esc":
			return ui.Back()
		}
	}
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return cmd
}

// Render implements ui.Screen.
func (h *HighScores) Render() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("High scores"))
	b.WriteString("\n\n")
	switch {
	case h.err != nil:
		b.WriteString(ui.Styles.Error.Render(fmt.Sprintf("could not load scores: %v", h.err)))
	case len(h.entries) == 0:
		b.WriteString(ui.Styles.Empty.Render("No scores yet. Play a round!"))
	default:
		b.WriteString(h.table.View())
	}
	b.WriteString("\n\n")
	b.WriteString(ui.Styles.Hint.Render("enter play · esc back"))
	return b.String()
}
