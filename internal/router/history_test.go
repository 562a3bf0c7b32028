package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_PushBackForward(t *testing.T) {
	h := NewHistory(HistoryModeWeb, "/")
	assert.Equal(t, -1, h.Index())
	assert.Equal(t, "", h.Current())

	h.Push("/")
	h.Push("/game")
	h.Push("/settings")
	assert.Equal(t, []string{"/", "/game", "/settings"}, h.Entries())

	p, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/game", p)

	p, ok = h.Back()
	require.True(t, ok)
	assert.Equal(t, "/", p)

	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Index())

	p, ok = h.Forward()
	require.True(t, ok)
	assert.Equal(t, "/game", p)
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewHistory(HistoryModeWeb, "")
	h.Push("/")
	h.Push("/game")
	h.Back()
	h.Push("/high-scores")

	assert.Equal(t, []string{"/", "/high-scores"}, h.Entries())
	assert.False(t, h.CanForward())
	assert.True(t, h.CanBack())
}

func TestHistory_Replace(t *testing.T) {
	h := NewHistory(HistoryModeWeb, "/")
	h.Replace("/")
	assert.Equal(t, []string{"/"}, h.Entries())

	h.Push("/game")
	h.Replace("/high-scores")
	assert.Equal(t, []string{"/", "/high-scores"}, h.Entries())
	assert.Equal(t, 1, h.Index())
}

func TestHistory_Location(t *testing.T) {
	tests := []struct {
		mode HistoryMode
		base string
		path string
		want string
	}{
		{HistoryModeWeb, "/", "/high-scores", "/high-scores"},
		{HistoryModeWeb, "", "/", "/"},
		{HistoryModeWeb, "/arcade/", "/game", "/arcade/game"},
		{HistoryModeHash, "/", "/high-scores", "/#/high-scores"},
		{HistoryModeHash, "/arcade", "/", "/arcade/#/"},
	}
	for _, tt := range tests {
		h := NewHistory(tt.mode, tt.base)
		h.Push(tt.path)
		assert.Equal(t, tt.want, h.Location(), "%s base=%q path=%q", tt.mode, tt.base, tt.path)
		assert.Equal(t, tt.path, h.ParseLocation(h.Location()), "round trip %q", tt.want)
	}
}

func TestHistory_ParseLocation(t *testing.T) {
	web := NewHistory(HistoryModeWeb, "/")
	assert.Equal(t, "/settings", web.ParseLocation("/settings"))
	assert.Equal(t, "/", web.ParseLocation(""))
	assert.Equal(t, "/game", web.ParseLocation("game"))

	hash := NewHistory(HistoryModeHash, "/")
	assert.Equal(t, "/game", hash.ParseLocation("/#/game"))
	assert.Equal(t, "/", hash.ParseLocation("/#"))
	assert.Equal(t, "/settings", hash.ParseLocation("/settings"))

	for _, tt := range []struct {
		loc, want string
	}{
		{"/app", "/"},
		{"/app/", "/"},
		{"/app/game", "/game"},
		{"/appgame", "/appgame"},
		{"/other/game", "/other/game"},
	} {
		based := NewHistory(HistoryModeWeb, "/app")
		assert.Equal(t, tt.want, based.ParseLocation(tt.loc), tt.loc)
	}
}

func TestHistory_Restore(t *testing.T) {
	h := NewHistory(HistoryModeWeb, "/")
	require.NoError(t, h.Restore([]string{"/", "/game", "/settings"}, 1))
	assert.Equal(t, "/game", h.Current())
	assert.True(t, h.CanForward())

	assert.Error(t, h.Restore([]string{"/"}, 3))
	assert.ErrorIs(t, h.Restore([]string{"/", "bad"}, 0), ErrInvalidPath)

	require.NoError(t, h.Restore(nil, 0))
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, -1, h.Index())
}

func TestParseHistoryMode(t *testing.T) {
	m, err := ParseHistoryMode("")
	require.NoError(t, err)
	assert.Equal(t, HistoryModeWeb, m)

	m, err = ParseHistoryMode("hash")
	require.NoError(t, err)
	assert.Equal(t, HistoryModeHash, m)

	_, err = ParseHistoryMode("memory")
	assert.Error(t, err)

	assert.Equal(t, "web", HistoryMode("bogus").String())
}
