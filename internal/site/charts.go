package site

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"cloudplaza/internal/deck"
)

const (
	svgWidth  = 400
	svgHeight = 200
	svgPad    = 24
)

// lineChart draws the trend as an inline SVG polyline.
func (p *page) lineChart(points []deck.TrendPoint, unit string) g.Node {
	peak := 0.0
	for _, pt := range points {
		peak = max(peak, pt.Value)
	}
	coords := make([]string, len(points))
	labels := make([]g.Node, len(points))
	for i, pt := range points {
		x := float64(svgPad)
		if len(points) > 1 {
			x += float64(i) * float64(svgWidth-2*svgPad) / float64(len(points)-1)
		}
		y := float64(svgHeight - svgPad)
		if peak > 0 {
			y -= pt.Value / peak * float64(svgHeight-2*svgPad)
		}
		coords[i] = fmt.Sprintf("%.1f,%.1f", x, y)
		labels[i] = g.El("text",
			g.Attr("x", fmt.Sprintf("%.1f", x)),
			g.Attr("y", fmt.Sprint(svgHeight-4)),
			g.Attr("text-anchor", "middle"),
			g.Text(pt.Year),
		)
	}
	return h.Figure(h.Class("chart chart-line"), p.chartData("line", points),
		g.El("svg",
			g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", svgWidth, svgHeight)),
			g.Attr("role", "img"),
			g.El("polyline",
				g.Attr("points", strings.Join(coords, " ")),
				g.Attr("fill", "none"),
				g.Attr("stroke", seriesColors[1]),
				g.Attr("stroke-width", "3"),
			),
			g.Group(labels),
		),
		h.FigCaption(g.Text("("+unit+")")),
	)
}

// barChart draws grouped bars for the revenue scenarios.
func (p *page) barChart(rows []deck.FinancialMetric) g.Node {
	peak := 0.0
	for _, r := range rows {
		peak = max(peak, r.Conservative, r.Base, r.Optimistic)
	}
	return h.Figure(h.Class("chart chart-bar"), p.chartData("bar", rows),
		legend(deck.SeriesNames[:], seriesColors[:]),
		g.Map(rows, func(r deck.FinancialMetric) g.Node {
			values := [3]float64{r.Conservative, r.Base, r.Optimistic}
			bars := make([]g.Node, len(values))
			for i, v := range values {
				bars[i] = h.Div(h.Class("bar"),
					h.Span(h.Class("fill"), h.Style(fmt.Sprintf("width:%s%%;background:%s", percentOf(v, peak), seriesColors[i]))),
					h.Span(h.Class("value"), g.Text(formatNumber(v))),
				)
			}
			return h.Div(h.Class("bar-group"), h.Span(h.Class("label"), g.Text(r.Year)), g.Group(bars))
		}),
	)
}

// donut draws shares as a conic-gradient ring.
func (p *page) donut(kind string, shares []deck.Share) g.Node {
	stops := make([]string, 0, len(shares))
	total := 0.0
	for _, s := range shares {
		total += s.Percent
	}
	acc := 0.0
	for i, s := range shares {
		from := percentOf(acc, total)
		acc += s.Percent
		stops = append(stops, fmt.Sprintf("%s %s%% %s%%", shareColor(i), from, percentOf(acc, total)))
	}
	return h.Figure(h.Class("chart chart-donut"), p.chartData(kind, shares),
		h.Div(h.Class("ring"), h.Style("background:conic-gradient("+strings.Join(stops, ",")+")")),
		shareLegend(shares),
	)
}

// stackedBar draws shares as one proportional strip.
func (p *page) stackedBar(kind string, shares []deck.Share) g.Node {
	total := 0.0
	for _, s := range shares {
		total += s.Percent
	}
	segments := make([]g.Node, len(shares))
	for i, s := range shares {
		segments[i] = h.Span(h.Style(fmt.Sprintf("width:%s%%;background:%s", percentOf(s.Percent, total), shareColor(i))))
	}
	return h.Figure(h.Class("chart chart-strip"), p.chartData(kind, shares),
		h.Div(h.Class("strip"), g.Group(segments)),
		shareLegend(shares),
	)
}

func legend(names, colors []string) g.Node {
	items := make([]g.Node, len(names))
	for i, n := range names {
		items[i] = h.Li(h.Span(h.Class("dot"), h.Style("background:"+colors[i])), g.Text(n))
	}
	return h.Ul(h.Class("legend"), g.Group(items))
}

func shareLegend(shares []deck.Share) g.Node {
	items := make([]g.Node, len(shares))
	for i, s := range shares {
		items[i] = h.Li(
			h.Span(h.Class("dot"), h.Style("background:"+shareColor(i))),
			g.Textf("%s %s%%", s.Name, formatNumber(s.Percent)),
		)
	}
	return h.Ul(h.Class("legend"), g.Group(items))
}

func shareColor(i int) string {
	return shareColors[i%len(shareColors)]
}

func percentOf(v, total float64) string {
	if total <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", v/total*100)
}
