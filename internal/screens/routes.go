// Package screens holds the arcade's pages and the navigation table that
// binds them to paths.
package screens

import (
	"arcade/internal/router"
	"arcade/internal/store"
	"arcade/internal/ui"
)

// Paths of the arcade's pages.
const (
	PathHome       = "/"
	PathGame       = "/game"
	PathSettings   = "/settings"
	PathHighScores = "/high-scores"
)

// Set is one instance of every page. The instances live as long as the
// navigation table that references them.
type Set struct {
	Home       *Home
	Game       *Game
	Settings   *Settings
	HighScores *HighScores
	NotFound   *NotFound
}

// New creates every page, backed by st.
func New(st *store.Store) *Set {
	return &Set{
		Home:       NewHome(),
		Game:       NewGame(st),
		Settings:   NewSettings(st),
		HighScores: NewHighScores(st),
		NotFound:   NewNotFound(),
	}
}

// Routes returns the navigation table entries in declaration order.
func (s *Set) Routes() []router.Route[ui.Screen] {
	return []router.Route[ui.Screen]{
		{Path: PathHome, View: s.Home},
		{Path: PathGame, View: s.Game},
		{Path: PathSettings, View: s.Settings},
		{Path: PathHighScores, View: s.HighScores},
	}
}

// Table builds the navigation table.
func (s *Set) Table() (*router.Table[ui.Screen], error) {
	return router.NewTable(s.Routes()...)
}

// Links are the leader bindings for every page.
func Links() []ui.Link {
	return []ui.Link{
		{Key: "h", Path: PathHome, Title: "Home"},
		{Key: "g", Path: PathGame, Title: "Play"},
		{Key: "s", Path: PathSettings, Title: "Settings"},
		{Key: "o", Path: PathHighScores, Title: "High scores"},
	}
}

// Name returns a short label for a page.
func Name(v ui.Screen) string {
	switch v.(type) {
	case *Home:
		return "home"
	case *Game:
		return "game"
	case *Settings:
		return "settings"
	case *HighScores:
		return "high scores"
	case *NotFound:
		return "not found"
	default:
		return "unknown"
	}
}
