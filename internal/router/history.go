package router

import (
	"fmt"
	"strings"
)

// History is the address bar and the stack of visited entries.
// It is not safe for concurrent use on its own; a Router guards the History
// it owns.
type History struct {
	mode    HistoryMode
	base    string
	entries []string
	index   int
}

// NewHistory creates an empty history. base is the prefix every location is
// served under ("/" or "" for the root); a trailing slash is ignored.
func NewHistory(mode HistoryMode, base string) *History {
	return &History{
		mode:  mode.normalize(),
		base:  strings.TrimSuffix(base, "/"),
		index: -1,
	}
}

// Mode returns the history mode.
func (h *History) Mode() HistoryMode {
	return h.mode
}

// Push records path as a new entry after the current one. Forward entries are
// discarded, matching browser behavior.
func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry. On an empty history it behaves like Push.
func (h *History) Replace(path string) {
	if h.index < 0 {
		h.Push(path)
		return
	}
	h.entries[h.index] = path
}

// Back moves to the previous entry and returns its path.
func (h *History) Back() (string, bool) {
	if h.index <= 0 {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves to the next entry and returns its path.
func (h *History) Forward() (string, bool) {
	if h.index < 0 || h.index >= len(h.entries)-1 {
		return "", false
	}
	h.index++
	return h.entries[h.index], true
}

// CanBack reports whether Back would succeed.
func (h *History) CanBack() bool { return h.index > 0 }

// CanForward reports whether Forward would succeed.
func (h *History) CanForward() bool { return h.index >= 0 && h.index < len(h.entries)-1 }

// Current returns the path of the current entry, or "" when empty.
func (h *History) Current() string {
	if h.index < 0 {
		return ""
	}
	return h.entries[h.index]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the position of the current entry (-1 when empty).
func (h *History) Index() int {
	return h.index
}

// Entries returns a copy of the entry stack, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Location returns the address-bar text for the current entry.
func (h *History) Location() string {
	return h.Format(h.Current())
}

// Format renders path the way the address bar shows it in this mode.
func (h *History) Format(path string) string {
	if path == "" {
		path = "/"
	}
	if h.mode == HistoryModeHash {
		return h.base + "/#" + path
	}
	return h.base + path
}

// ParseLocation is the inverse of Format: it extracts the application path
// from an address-bar string. The base is only stripped at a segment
// boundary; a location outside the base is returned as is and will not
// resolve.
func (h *History) ParseLocation(loc string) string {
	if h.mode == HistoryModeHash {
		if i := strings.Index(loc, "#"); i >= 0 {
			return withLeadingSlash(loc[i+1:])
		}
	}
	switch {
	case h.base == "":
	case loc == h.base:
		loc = ""
	case strings.HasPrefix(loc, h.base+"/"):
		loc = loc[len(h.base):]
	}
	return withLeadingSlash(loc)
}

// Restore re-seeds the stack, e.g. from a saved session. Entries must be
// valid paths and index must point into entries.
func (h *History) Restore(entries []string, index int) error {
	if len(entries) == 0 {
		h.entries = nil
		h.index = -1
		return nil
	}
	if index < 0 || index >= len(entries) {
		return fmt.Errorf("restore history: index %d out of range [0,%d)", index, len(entries))
	}
	for _, e := range entries {
		if err := validatePath(e); err != nil {
			return &RouteError{Op: "restore history", Path: e, Err: err}
		}
	}
	h.entries = append([]string(nil), entries...)
	h.index = index
	return nil
}

func withLeadingSlash(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") {
		return "/" + strings.TrimPrefix(p, "/")
	}
	return p
}
