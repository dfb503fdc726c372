// Package textutil measures and fits text in terminal cells. Widths count CJK
// glyphs as two cells and ignore ANSI styling.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width is the number of terminal cells s occupies once rendered.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text s to at most w cells, ending in Ellipsis when cut.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, Ellipsis)
}

// PadRight left-aligns s in w cells. Wider input is returned unchanged.
func PadRight(s string, w int) string {
	if n := Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// PadLeft right-aligns s in w cells. Wider input is returned unchanged.
func PadLeft(s string, w int) string {
	if n := Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}
