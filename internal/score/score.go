// Package score holds the number-guessing game's difficulty levels, score
// computation and the high-score board.
package score

import (
	"fmt"
	"sort"
	"time"
)

// Difficulty selects the range the secret number is drawn from.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every level in cycling order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// Max returns the largest number that can be drawn at this difficulty.
func (d Difficulty) Max() int {
	switch d {
	case Easy:
		return 50
	case Hard:
		return 500
	default:
		return 100
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulties[(int(d)+1)%len(Difficulties)]
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	n := len(Difficulties)
	return Difficulties[(int(d)-1+n)%n]
}

// ParseDifficulty parses a level name.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if d.String() == s {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Compute returns the score for solving a round in attempts guesses.
// Fewer attempts and wider ranges score higher; the minimum score is 1.
func Compute(d Difficulty, attempts int) int {
	if attempts < 1 {
		attempts = 1
	}
	s := d.Max() * 10 / attempts
	if s < 1 {
		return 1
	}
	return s
}

// Entry is one finished round.
type Entry struct {
	Player     string     `json:"player"`
	Difficulty Difficulty `json:"difficulty"`
	Attempts   int        `json:"attempts"`
	Score      int        `json:"score"`
	At         time.Time  `json:"at"`
}

// BoardSize is how many entries a Board keeps.
const BoardSize = 10

// Board is the ranked high-score list: score descending, then fewer
// attempts, then earlier rounds.
type Board struct {
	Entries []Entry `json:"entries"`
}

// Add inserts e, keeps the board ranked and trims it to BoardSize.
// Returns the 1-based rank of e, or 0 when it did not make the board.
func (b *Board) Add(e Entry) int {
	b.Entries = append(b.Entries, e)
	b.sort()
	rank := 0
	for i := range b.Entries {
		if b.Entries[i] == e {
			rank = i + 1
			break
		}
	}
	if len(b.Entries) > BoardSize {
		b.Entries = b.Entries[:BoardSize]
	}
	if rank > BoardSize {
		return 0
	}
	return rank
}

// Top returns up to n entries, best first.
func (b *Board) Top(n int) []Entry {
	b.sort()
	if n > len(b.Entries) {
		n = len(b.Entries)
	}
	out := make([]Entry, n)
	copy(out, b.Entries[:n])
	return out
}

func (b *Board) sort() {
	sort.SliceStable(b.Entries, func(i, j int) bool {
		a, c := b.Entries[i], b.Entries[j]
		if a.Score != c.Score {
			return a.Score > c.Score
		}
		if a.Attempts != c.Attempts {
			return a.Attempts < c.Attempts
		}
		return a.At.Before(c.At)
	})
}
