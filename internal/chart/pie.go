package chart

import (
	"fmt"
	"math"
	"strings"
)

// Pie shows parts of a whole as a proportional strip with a legend. It stands in
// for the donut charts of the web page.
type Pie[T any] struct {
	Name   func(T) string
	Value  func(T) float64
	Colors []string
	data   []T
}

// NewPie builds a share chart over rows. The slice is kept as supplied.
func NewPie[T any](rows []T, name func(T) string, value func(T) float64, colors ...string) *Pie[T] {
	return &Pie[T]{Name: name, Value: value, Colors: colors, data: rows}
}

// Data returns the rows the chart was built with.
func (p *Pie[T]) Data() []T { return p.data }

func (p *Pie[T]) color(i int) string {
	if len(p.Colors) == 0 {
		return "252"
	}
	return p.Colors[i%len(p.Colors)]
}

// Render draws a strip of width cells followed by the legend.
func (p *Pie[T]) Render(width int) string {
	width = normWidth(width)
	total := 0.0
	for _, row := range p.data {
		if v := p.Value(row); v > 0 {
			total += v
		}
	}

	var strip strings.Builder
	if total > 0 {
		used := 0
		for i, row := range p.data {
			v := math.Max(p.Value(row), 0)
			n := int(math.Round(v / total * float64(width)))
			if i == len(p.data)-1 {
				n = width - used
			}
			n = max(min(n, width-used), 0)
			used += n
			strip.WriteString(swatch(p.color(i), strings.Repeat("━", n)))
		}
	}

	legend := make([]string, len(p.data))
	for i, row := range p.data {
		legend[i] = fmt.Sprintf("%s %s %s%%", swatch(p.color(i), "●"), p.Name(row), formatValue(p.Value(row)))
	}
	return strip.String() + "\n" + strings.Join(legend, "  ")
}
