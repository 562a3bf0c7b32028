package router

import "fmt"

// HistoryMode selects how the address bar represents application paths.
type HistoryMode string

const (
	// HistoryModeWeb shows clean paths ("/high-scores").
	HistoryModeWeb HistoryMode = "web"
	// HistoryModeHash keeps the path in the fragment ("/#/high-scores").
	HistoryModeHash HistoryMode = "hash"
)

// ParseHistoryMode parses a mode name. The empty string selects web mode.
func ParseHistoryMode(s string) (HistoryMode, error) {
	switch HistoryMode(s) {
	case "", HistoryModeWeb:
		return HistoryModeWeb, nil
	case HistoryModeHash:
		return HistoryModeHash, nil
	default:
		return "", fmt.Errorf("unknown history mode %q (want %q or %q)", s, HistoryModeWeb, HistoryModeHash)
	}
}

func (m HistoryMode) normalize() HistoryMode {
	switch m {
	case HistoryModeHash:
		return HistoryModeHash
	default:
		return HistoryModeWeb
	}
}

func (m HistoryMode) String() string {
	return string(m.normalize())
}
