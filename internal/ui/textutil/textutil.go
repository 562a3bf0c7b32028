// Package textutil measures and clips text by terminal columns.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks clipped text.
const Ellipsis = "…"

// Width is the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate clips s to at most cols columns, ending in Ellipsis when clipped.
func Truncate(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if Width(s) <= cols {
		return s
	}
	return runewidth.Truncate(s, cols, Ellipsis)
}

// TruncateLeft keeps the end of s, which is the informative part of a
// location such as "/#/high-scores".
func TruncateLeft(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	w := Width(s)
	if w <= cols {
		return s
	}
	runes := []rune(s)
	keep := cols - Width(Ellipsis)
	used, i := 0, len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if used+rw > keep {
			break
		}
		used += rw
		i--
	}
	return Ellipsis + string(runes[i:])
}
