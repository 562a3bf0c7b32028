package screens

import (
	"context"
	"testing"
	"time"

	"arcade/internal/router"
	"arcade/internal/score"
	"arcade/internal/store"
	"arcade/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes a command produced by a page and returns its message. Page
// commands under test are plain message constructors.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewStoreAt(t.TempDir())
}

func newTestGame(t *testing.T, st *store.Store, secret int) *Game {
	t.Helper()
	g := NewGame(st)
	g.draw = func(int) int { return secret - 1 }
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	g.Init()
	return g
}

func guess(g *Game, s string) tea.Cmd {
	g.input.SetValue(s)
	return g.Update(keyMsg("enter"))
}

func TestTable_BindsFourPages(t *testing.T) {
	set := New(newTestStore(t))
	table, err := set.Table()
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	for path, want := range map[string]ui.Screen{
		PathHome:       set.Home,
		PathGame:       set.Game,
		PathSettings:   set.Settings,
		PathHighScores: set.HighScores,
	} {
		r, err := table.Resolve(path)
		require.NoError(t, err, path)
		assert.Same(t, want, r.View, path)
	}

	_, err = table.Resolve("/missing")
	assert.ErrorIs(t, err, router.ErrRouteNotFound)
}

func TestLinks_CoverEveryRoute(t *testing.T) {
	set := New(newTestStore(t))
	var paths []string
	for _, l := range Links() {
		paths = append(paths, l.Path)
	}
	for _, r := range set.Routes() {
		assert.Contains(t, paths, r.Path)
	}
}

func TestName(t *testing.T) {
	set := New(newTestStore(t))
	assert.Equal(t, "home", Name(set.Home))
	assert.Equal(t, "high scores", Name(set.HighScores))
	assert.Equal(t, "not found", Name(set.NotFound))
}

func TestHome_EnterFollowsSelectedLink(t *testing.T) {
	h := NewHome()
	assert.Equal(t, PathGame, h.selected())
	assert.Equal(t, ui.NavigateMsg{Path: PathGame}, run(t, h.Update(keyMsg("enter"))))

	h.Update(keyMsg("down"))
	h.Update(keyMsg("down"))
	assert.Equal(t, PathHighScores, h.selected())
	assert.Equal(t, ui.NavigateMsg{Path: PathHighScores}, run(t, h.Update(keyMsg("enter"))))
}

func TestGame_WinRecordsScoreAndRedirects(t *testing.T) {
	st := newTestStore(t)
	g := newTestGame(t, st, 42)

	assert.Nil(t, guess(g, "10"))
	assert.Contains(t, g.Render(), "too low")
	assert.Nil(t, guess(g, "90"))
	assert.Contains(t, g.Render(), "too high")

	msg := run(t, guess(g, "42"))
	nav, ok := msg.(ui.NavigateMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, PathHighScores, nav.Path)
	assert.True(t, nav.Replace)
	assert.Contains(t, nav.Status, "rank #1")
	assert.Equal(t, 3, g.attempts)

	board, err := st.Scores()
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	e := board.Entries[0]
	assert.Equal(t, "player", e.Player)
	assert.Equal(t, score.Normal, e.Difficulty)
	assert.Equal(t, 3, e.Attempts)
	assert.Equal(t, score.Compute(score.Normal, 3), e.Score)
}

func TestGame_InvalidGuessIsNotCounted(t *testing.T) {
	g := newTestGame(t, newTestStore(t), 7)

	for _, in := range []string{"", "abc", "0", "101", "-3"} {
		assert.Nil(t, guess(g, in), in)
	}
	assert.Equal(t, 0, g.attempts)
	assert.Contains(t, g.Render(), "between 1 and 100")
}

func TestGame_UsesDifficultyRange(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveSettings(store.Settings{Player: "ada", Difficulty: score.Hard}))

	var drawnFrom int
	g := NewGame(st)
	g.draw = func(n int) int { drawnFrom = n; return 0 }
	g.Init()

	assert.Equal(t, 500, drawnFrom)
	assert.Nil(t, guess(g, "450"), "450 is in range on hard")
	assert.Equal(t, 1, g.attempts)
}

func TestGame_InitStartsFreshRound(t *testing.T) {
	g := newTestGame(t, newTestStore(t), 5)
	guess(g, "1")
	require.Equal(t, 1, g.attempts)

	g.Init()
	assert.Equal(t, 0, g.attempts)
	assert.True(t, g.CapturingInput())
}

func TestGame_EscGoesBack(t *testing.T) {
	g := newTestGame(t, newTestStore(t), 5)
	assert.Equal(t, ui.BackMsg{}, run(t, g.Update(keyMsg("esc"))))
}

func TestSettings_SaveWritesStore(t *testing.T) {
	st := newTestStore(t)
	s := NewSettings(st)
	s.Init()
	assert.True(t, s.CapturingInput())
	assert.Equal(t, "player", s.values().Player)

	s.name.SetValue("grace")
	s.Update(keyMsg("tab"))
	assert.False(t, s.CapturingInput(), "difficulty field does not capture keys")
	s.Update(keyMsg("right"))
	assert.Equal(t, score.Hard, s.values().Difficulty)

	msg := run(t, s.Update(keyMsg("enter")))
	status, ok := msg.(ui.StatusMsg)
	require.True(t, ok, "got %T", msg)
	assert.False(t, status.Err)

	saved, err := st.Settings()
	require.NoError(t, err)
	assert.Equal(t, store.Settings{Player: "grace", Difficulty: score.Hard}, saved)
}

func TestSettings_EmptyNameIsRejected(t *testing.T) {
	st := newTestStore(t)
	s := NewSettings(st)
	s.Init()
	s.name.SetValue("   ")

	msg := run(t, s.Update(keyMsg("enter")))
	status, ok := msg.(ui.StatusMsg)
	require.True(t, ok)
	assert.True(t, status.Err)

	saved, err := st.Settings()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultSettings(), saved)
}

func TestHighScores_ShowsBoard(t *testing.T) {
	st := newTestStore(t)
	h := NewHighScores(st)
	h.Init()
	assert.Empty(t, h.Entries())
	assert.Contains(t, h.Render(), "No scores yet")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := st.RecordScore(score.Entry{Player: "ada", Difficulty: score.Easy, Attempts: 4, Score: 125, At: at})
	require.NoError(t, err)
	_, err = st.RecordScore(score.Entry{Player: "bob", Difficulty: score.Hard, Attempts: 2, Score: 2500, At: at})
	require.NoError(t, err)

	h.Init()
	require.Len(t, h.Entries(), 2)
	assert.Equal(t, "bob", h.Entries()[0].Player)
	view := h.Render()
	assert.Contains(t, view, "ada")
	assert.Contains(t, view, "2500")

	assert.Equal(t, ui.NavigateMsg{Path: PathGame}, run(t, h.Update(keyMsg("enter"))))
	assert.Equal(t, ui.BackMsg{}, run(t, h.Update(keyMsg("esc"))))
}

func TestHighScores_ClipsLongPlayerNames(t *testing.T) {
	st := newTestStore(t)
	_, err := st.RecordScore(score.Entry{Player: "Bartholomew Fitzgerald", Difficulty: score.Normal, Attempts: 5, Score: 200, At: time.Now()})
	require.NoError(t, err)

	h := NewHighScores(st)
	h.Init()
	require.Len(t, h.Entries(), 1)
	assert.Equal(t, "Bartholomew Fitzgerald", h.Entries()[0].Player)

	view := h.Render()
	assert.Contains(t, view, "Bartho")
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "Fitzgerald")
}

func TestNotFound_ShowsLocation(t *testing.T) {
	n := NewNotFound()
	n.Update(ui.ActivatedMsg{Path: "/nope", Location: "/#/nope"})
	assert.Contains(t, n.Render(), "/#/nope")
	assert.Equal(t, ui.NavigateMsg{Path: PathHome, Replace: true}, run(t, n.Update(keyMsg("enter"))))
}

// The arcade's own pages wired through the shell: home, high scores, back.
func TestArcade_HighScoresAndBack(t *testing.T) {
	set := New(newTestStore(t))
	table, err := set.Table()
	require.NoError(t, err)
	r, err := router.New(table, router.WithNotFound(ui.Screen(set.NotFound)))
	require.NoError(t, err)
	require.NoError(t, r.Start(context.Background(), ""))

	m := ui.NewAppModel(r, Links(), nil).AsTeaModel()
	m.Update(ui.NavigateMsg{Path: PathHighScores})
	assert.Equal(t, PathHighScores, r.Location())
	assert.Contains(t, m.View(), "High scores")
	assert.Same(t, set.HighScores, r.Current().View)

	m.Update(ui.BackMsg{})
	assert.Equal(t, PathHome, r.Location())
	assert.Same(t, set.Home, r.Current().View)
	assert.True(t, r.CanForward())

	m.Update(ui.NavigateMsg{Path: "/arcade"})
	assert.Same(t, set.NotFound, r.Current().View)
	assert.False(t, r.Current().Matched)
	assert.Contains(t, m.View(), "Nothing lives at /arcade")
}
