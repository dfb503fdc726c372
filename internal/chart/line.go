package chart

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"cloudplaza/internal/textutil"
)

// Line plots one numeric series over labeled x positions.
type Line[T any] struct {
	Unit    string
	Height  int
	X       func(T) string
	Y       func(T) float64
	data    []T
}

// NewLine builds a line chart over rows. The slice is kept as supplied.
func NewLine[T any](rows []T, x func(T) string, y func(T) float64) *Line[T] {
	return &Line[T]{X: x, Y: y, Height: 8, data: rows}
}

// Data returns the rows the chart was built with.
func (l *Line[T]) Data() []T { return l.data }

// Render draws the plot with the x labels underneath.
func (l *Line[T]) Render(width int) string {
	if len(l.data) == 0 {
		return ""
	}
	width = normWidth(width)
	ys := make([]float64, len(l.data))
	xs := make([]string, len(l.data))
	for i, row := range l.data {
		ys[i] = l.Y(row)
		xs[i] = l.X(row)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(l.Height),
		asciigraph.Precision(1),
		asciigraph.LowerBound(0),
	}
	// asciigraph's width excludes the y-axis gutter.
	plotW := width - 10
	if plotW > len(ys) {
		opts = append(opts, asciigraph.Width(plotW))
	}
	plot := asciigraph.Plot(ys, opts...)

	var sb strings.Builder
	if l.Unit != "" {
		sb.WriteString("(" + l.Unit + ")\n")
	}
	sb.WriteString(plot)
	sb.WriteString("\n" + l.axis(xs, width))
	return sb.String()
}

// axis spreads the x labels evenly under the plot area.
func (l *Line[T]) axis(xs []string, width int) string {
	if len(xs) == 1 {
		return xs[0]
	}
	slot := width / len(xs)
	var sb strings.Builder
	for _, x := range xs {
		sb.WriteString(textutil.PadRight(x, slot))
	}
	return strings.TrimRight(sb.String(), " ")
}
