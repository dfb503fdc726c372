package chart

import (
	"strconv"
	"strings"

	"cloudplaza/internal/textutil"
)

// Bar is a grouped bar chart: one group per row, one bar per series.
type Bar[T any] struct {
	Label  func(T) string
	Series []Series[T]
	data   []T
}

// NewBar builds a bar chart over rows. The slice is kept as supplied.
func NewBar[T any](rows []T, label func(T) string, series ...Series[T]) *Bar[T] {
	return &Bar[T]{Label: label, Series: series, data: rows}
}

// Data returns the rows the chart was built with.
func (b *Bar[T]) Data() []T { return b.data }

// Render draws the legend followed by one group of horizontal bars per row.
func (b *Bar[T]) Render(width int) string {
	width = normWidth(width)

	labelW, nameW, valW := 0, 0, 0
	peak := 0.0
	for _, row := range b.data {
		labelW = max(labelW, textutil.Width(b.Label(row)))
		for _, s := range b.Series {
			v := s.Value(row)
			if v > peak {
				peak = v
			}
			valW = max(valW, len(formatValue(v)))
		}
	}
	for _, s := range b.Series {
		nameW = max(nameW, textutil.Width(s.Name))
	}
	barW := width - labelW - nameW - valW - 4
	if barW < 1 {
		barW = 1
	}

	var sb strings.Builder
	sb.WriteString(b.legend() + "\n")
	for _, row := range b.data {
		for i, s := range b.Series {
			label := ""
			if i == 0 {
				label = b.Label(row)
			}
			v := s.Value(row)
			n := 0
			if peak > 0 && v > 0 {
				n = int(v / peak * float64(barW))
				if n == 0 {
					n = 1
				}
			}
			sb.WriteString(textutil.PadRight(label, labelW) + " ")
			sb.WriteString(textutil.PadRight(s.Name, nameW) + " ")
			sb.WriteString(swatch(s.Color, strings.Repeat("█", n)))
			sb.WriteString(" " + formatValue(v) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Bar[T]) legend() string {
	parts := make([]string, len(b.Series))
	for i, s := range b.Series {
		parts[i] = swatch(s.Color, "●") + " " + s.Name
	}
	return strings.Join(parts, "  ")
}

// formatValue prints whole numbers without a fraction.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

