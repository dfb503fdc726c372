// Package chart renders the deck's static charts as terminal text.
//
// Every chart keeps the rows it was built with and exposes them unchanged through
// Data; selectors pick the label and values out of each row at render time, so
// callers pass their records directly without reshaping.
package chart

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used when a chart is rendered with a non-positive width.
const DefaultWidth = 60

// Series selects one numeric column out of a row type.
type Series[T any] struct {
	Name  string
	Color string // lipgloss color, e.g. "#3b82f6"
	Value func(T) float64
}

func normWidth(w int) int {
	if w <= 0 {
		return DefaultWidth
	}
	return w
}

func swatch(color, glyph string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(glyph)
}
