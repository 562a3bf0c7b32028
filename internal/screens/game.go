package screens

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"arcade/internal/score"
	"arcade/internal/store"
	"arcade/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Game is a number-guessing round. A new secret is drawn every time the
// page is activated.
type Game struct {
	store *store.Store
	draw  func(n int) int // uniform in [0, n)
	now   func() time.Time

	input    textinput.Model
	settings store.Settings
	secret   int
	attempts int
	guesses  []int
	feedback string
	warn     bool
}

var _ ui.Screen = (*Game)(nil)

// NewGame creates the game page. Scores are recorded in st.
func NewGame(st *store.Store) *Game {
	in := textinput.New()
	in.Placeholder = "your guess"
	in.CharLimit = 4
	in.Width = 10
	in.Prompt = "› "
	return &Game{
		store: st,
		draw:  rand.IntN,
		now:   time.Now,
		input: in,
	}
}

// Init implements ui.Screen. It starts a fresh round.
func (g *Game) Init() tea.Cmd {
	var cmds []tea.Cmd
	s, err := g.store.Settings()
	if err != nil {
		cmds = append(cmds, ui.StatusErr(fmt.Errorf("load settings: %w", err)))
	}
	g.settings = s
	g.secret = g.draw(s.Difficulty.Max()) + 1
	g.attempts = 0
	g.guesses = nil
	g.feedback = ""
	g.warn = false
	g.input.Reset()
	cmds = append(cmds, g.input.Focus(), textinput.Blink)
	return tea.Batch(cmds...)
}

// CapturingInput implements ui.InputCapturer.
func (g *Game) CapturingInput() bool {
	return g.input.Focused()
}

// Update implements ui.Screen.
func (g *Game) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			return g.guess()
		case "esc":
			return ui.Back()
		}
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

func (g *Game) guess() tea.Cmd {
	hi := g.settings.Difficulty.Max()
	raw := strings.TrimSpace(g.input.Value())
	g.input.Reset()

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > hi {
		g.feedback = fmt.Sprintf("Enter a whole number between 1 and %d.", hi)
		g.warn = true
		return nil
	}

	g.attempts++
	g.guesses = append(g.guesses, n)
	g.warn = false
	switch {
	case n < g.secret:
		g.feedback = fmt.Sprintf("%d is too low. Go higher.", n)
		return nil
	case n > g.secret:
		g.feedback = fmt.Sprintf("%d is too high. Go lower.", n)
		return nil
	}

	entry := score.Entry{
		Player:     g.settings.Player,
		Difficulty: g.settings.Difficulty,
		Attempts:   g.attempts,
		Score:      score.Compute(g.settings.Difficulty, g.attempts),
		At:         g.now(),
	}
	g.feedback = fmt.Sprintf("Got it! %d was the number.", g.secret)
	g.input.Blur()

	rank, err := g.store.RecordScore(entry)
	if err != nil {
		return ui.StatusErr(fmt.Errorf("save score: %w", err))
	}
	status := fmt.Sprintf("%s scored %d in %d attempts", entry.Player, entry.Score, entry.Attempts)
	if rank > 0 {
		status += fmt.Sprintf(" (rank #%d)", rank)
	}
	return ui.RedirectWithStatus(PathHighScores, status)
}

// Render implements ui.Screen.
func (g *Game) Render() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render(fmt.Sprintf("Guess the number (1–%d)", g.settings.Difficulty.Max())))
	b.WriteString("\n")
	b.WriteString(ui.Styles.Muted.Render(fmt.Sprintf("player %s · %s · attempts %d",
		g.settings.Player, g.settings.Difficulty, g.attempts)))
	b.WriteString("\n\n")
	b.WriteString(g.input.View())
	b.WriteString("\n\n")
	if g.feedback != "" {
		style := ui.Styles.Normal
		if g.warn {
			style = ui.Styles.Warning
		}
		b.WriteString(style.Render(g.feedback))
		b.WriteString("\n")
	}
	if len(g.guesses) > 0 {
		parts := make([]string, len(g.guesses))
		for i, n := range g.guesses {
			parts[i] = strconv.Itoa(n)
		}
		b.WriteString(ui.Styles.Muted.Render("guesses: " + strings.Join(parts, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(ui.Styles.Hint.Render("enter guess · esc back · alt+← back"))
	return b.String()
}
