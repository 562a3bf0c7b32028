package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is the canonical name of the leader key in sequences.
const leaderSeq = "SPC"

type binding struct {
	cmd  tea.Cmd
	desc string
}

// KeybindRegistry maps key sequences to commands. Sequences are written
// space-separated with SPC for the leader: "SPC g", "SPC n b", "alt+left".
// A Group names a prefix that only leads to further keys.
type KeybindRegistry struct {
	bindings map[string]binding
	groups   map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		groups:   make(map[string]string),
	}
}

// Bind registers seq. desc is shown in the leader help; the last binding
// for a sequence wins.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc}
}

// Group labels prefix in the leader help, e.g. Group("SPC n", "history").
func (r *KeybindRegistry) Group(prefix, desc string) {
	r.groups[normalizeSeq(prefix)] = desc
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether some binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints maps each key that may follow currentSeq ("" is right after
// the leader) to its label. Keys opening a group end in "…".
func (r *KeybindRegistry) LeaderHints(currentSeq string) map[string]string {
	prefix := leaderSeq
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq)
	}
	prefix += " "

	out := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, prefix)
		if !ok || b.cmd == nil {
			continue
		}
		next, deeper, _ := strings.Cut(rest, " ")
		switch {
		case deeper != "":
			label := next
			if d := r.groups[prefix+next]; d != "" {
				label = d
			}
			out[next] = label + "…"
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart maps a tea key string to a sequence part. Bubble Tea reports
// the space bar as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks leader state and dispatches keys to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string // sequence typed since the leader, leader included
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a key. consumed means the screen must not see it.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if !h.LeaderWaiting {
		if part == leaderSeq {
			h.LeaderWaiting = true
			h.Buffer = []string{leaderSeq}
			return true, nil
		}
		if c := h.Registry.Lookup(part); c != nil {
			return true, c
		}
		return false, nil
	}

	if part == "esc" {
		h.Cancel()
		return true, nil
	}
	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq); c != nil {
		h.Cancel()
		return true, c
	}
	if !h.Registry.HasPrefix(seq) {
		h.Cancel()
	}
	return true, nil
}

// Cancel leaves leader mode.
func (h *KeyHandler) Cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}
