package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cloudplaza/internal/chart"
	"cloudplaza/internal/deck"
)

// anchor is the first document line of a rendered section.
type anchor struct {
	ID   deck.SectionID
	Line int
}

// document is the laid-out page body.
type document struct {
	content string
	lines   int
	anchors []anchor
}

// anchorOf returns the line of a section, ok=false when it was not rendered.
func (d document) anchorOf(id deck.SectionID) (int, bool) {
	for _, a := range d.anchors {
		if a.ID == id {
			return a.Line, true
		}
	}
	return 0, false
}

// charts holds the chart components fed straight from the deck constants.
type charts struct {
	trend    *chart.Line[deck.TrendPoint]
	audience *chart.Pie[deck.Share]
	mix      *chart.Pie[deck.Share]
	revenue  *chart.Bar[deck.FinancialMetric]
}

func shareName(s deck.Share) string     { return s.Name }
func sharePercent(s deck.Share) float64 { return s.Percent }

func newCharts(d *deck.Deck) charts {
	trend := chart.NewLine(d.Market.Trend,
		func(p deck.TrendPoint) string { return p.Year },
		func(p deck.TrendPoint) float64 { return p.Value },
	)
	trend.Unit = d.Market.TrendUnit

	revenue := chart.NewBar(d.Finance.Revenue,
		func(m deck.FinancialMetric) string { return m.Year },
		chart.Series[deck.FinancialMetric]{Name: deck.SeriesNames[0], Color: ColorSlate, Value: func(m deck.FinancialMetric) float64 { return m.Conservative }},
		chart.Series[deck.FinancialMetric]{Name: deck.SeriesNames[1], Color: ColorAccent, Value: func(m deck.FinancialMetric) float64 { return m.Base }},
		chart.Series[deck.FinancialMetric]{Name: deck.SeriesNames[2], Color: ColorGreen, Value: func(m deck.FinancialMetric) float64 { return m.Optimistic }},
	)

	return charts{
		trend:    trend,
		audience: chart.NewPie(d.Market.Audience, shareName, sharePercent, ColorAccent, ColorGreen, ColorAmber),
		mix:      chart.NewPie(d.Finance.RevenueMix, shareName, sharePercent, ColorAccent, ColorOrange, ColorGreen, ColorPurple),
		revenue:  revenue,
	}
}

// layoutDocument renders every section in registry order followed by the footer.
// heroHeight is the minimum height of the home section.
func layoutDocument(d *deck.Deck, c charts, width, heroHeight int) document {
	var (
		blocks  []string
		anchors []anchor
		line    int
	)
	for _, id := range deck.Sections() {
		block := renderSection(id, d, c, width, heroHeight)
		anchors = append(anchors, anchor{ID: id, Line: line})
		blocks = append(blocks, block)
		line += lipgloss.Height(block) + 1 // blank separator
	}
	blocks = append(blocks, renderFooter(d, width))
	content := strings.Join(blocks, "\n\n")
	return document{content: content, lines: lipgloss.Height(content), anchors: anchors}
}

func renderSection(id deck.SectionID, d *deck.Deck, c charts, width, heroHeight int) string {
	switch id {
	case deck.SectionHome:
		return renderHero(d, width, heroHeight)
	case deck.SectionSummary:
		return renderSummary(d, width)
	case deck.SectionMarket:
		return renderMarket(d, c, width)
	case deck.SectionProducts:
		return renderProducts(d, width)
	case deck.SectionFinance:
		return renderFinance(d, c, width)
	case deck.SectionTeam:
		return renderTeam(d, width)
	}
	return ""
}

func heading(title string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Heading.Render(title))
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func centered(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func imageRef(url string) string {
	return Styles.Muted.Render("▣ ") + Styles.Link.Render(url)
}

// grid lays cells out in rows of cols, each cell at the same width.
func grid(cells []string, cols, width int) string {
	if cols < 1 {
		cols = 1
	}
	cellW := width/cols - 1
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		row := make([]string, 0, cols)
		for _, cell := range cells[i:end] {
			row = append(row, lipgloss.NewStyle().Width(cellW).Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderHero(d *deck.Deck, width, height int) string {
	h := d.Hero
	action := Styles.Button.Render(h.Action+" →") + "   " + Styles.Muted.Render("⌖ "+h.Location)
	block := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Kicker.Render(h.Kicker),
		"",
		Styles.Hero.Render(h.Title),
		Styles.HeroAlt.Render(h.Subtitle),
		"",
		centered(h.Tagline, min(width, 60)),
		"",
		action,
		Styles.Muted.Render("enter ↵"),
	)
	if height < lipgloss.Height(block) {
		height = lipgloss.Height(block)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func renderSummary(d *deck.Deck, width int) string {
	s := d.Summary
	cards := make([]string, len(s.Space))
	for i, info := range s.Space {
		cards[i] = Styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			Styles.Muted.Render(info.Label),
			Styles.Figure.Render(info.Value),
			Styles.Muted.Render(info.Sub),
		))
	}
	vision := Styles.Card.Width(width - 2).Render(
		Styles.Subhead.Render("我们的愿景") + "\n" + wrap(s.Vision, width-6),
	)
	note := Styles.Card.Width(width - 2).Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)).Bold(true).Render("⚡ "+s.NoteTitle) + "\n" + s.Note,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		heading(s.Title, width),
		"",
		vision,
		grid(cards, 2, width),
		imageRef(s.Image),
		note,
	)
}

var swotColors = map[string]string{
	"S": ColorGreen,
	"W": "#ef4444",
	"O": ColorAccent,
	"T": ColorOrange,
}

func renderMarket(d *deck.Deck, c charts, width int) string {
	m := d.Market
	swot := make([]string, len(m.SWOT))
	for i, e := range m.SWOT {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color(swotColors[e.Letter])).
			Bold(true).
			Padding(0, 1).
			Render(e.Letter)
		swot[i] = badge + " " + Styles.Normal.Render(e.Text)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		heading(m.Title, width),
		"",
		Styles.Subhead.Render("↗ "+m.TrendTitle),
		c.trend.Render(width),
		Styles.Muted.Render(m.TrendCaption),
		"",
		Styles.Subhead.Render("SWOT 分析"),
		strings.Join(swot, "\n"),
		"",
		Styles.Subhead.Render(m.AudienceTitle),
		c.audience.Render(width),
	)
}

func renderProducts(d *deck.Deck, width int) string {
	p := d.Products
	parts := []string{heading(p.Title, width), ""}
	for _, o := range p.Offerings {
		points := make([]string, len(o.Points))
		for i, pt := range o.Points {
			points[i] = Styles.Kicker.Render("•") + " " + pt
		}
		card := Styles.Card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			Styles.Badge.Render(o.Badge)+" "+Styles.Figure.Render(o.Title),
			imageRef(o.Image),
			strings.Join(points, "\n"),
		))
		parts = append(parts, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderFinance(d *deck.Deck, c charts, width int) string {
	f := d.Finance
	cards := make([]string, len(f.Highlights))
	for i, h := range f.Highlights {
		cards[i] = Styles.Card.Render(Styles.Muted.Render(h.Label) + "\n" + Styles.Figure.Render(h.Value))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		heading(f.Title, width),
		"",
		grid(cards, 2, width),
		"",
		Styles.Subhead.Render(f.MixTitle),
		c.mix.Render(width),
		"",
		Styles.Subhead.Render("◔ "+f.RevenueTitle),
		c.revenue.Render(width),
	)
}

func renderTeam(d *deck.Deck, width int) string {
	t := d.Team
	parts := []string{heading(t.Title, width), Styles.Muted.Render(centered(t.Intro, width)), ""}
	for _, f := range t.Founders {
		achievements := make([]string, len(f.Achievements))
		for i, a := range f.Achievements {
			achievements[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)).Render("·") + " " + a
		}
		card := Styles.Card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			Styles.Figure.Render(f.Name)+"  "+Styles.Subhead.Render(f.Role),
			imageRef(f.Image),
			wrap(f.Description, width-6),
			Styles.Muted.Render("近期成就"),
			strings.Join(achievements, "\n"),
		))
		parts = append(parts, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderFooter(d *deck.Deck, width int) string {
	f := d.Footer
	stats := make([]string, len(f.Stats))
	for i, s := range f.Stats {
		stats[i] = lipgloss.JoinVertical(lipgloss.Center, Styles.Figure.Render(s.Value), Styles.Muted.Render(s.Caption))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(stats, "  │  ")...)
	center := func(s string) string { return centered(s, width) }
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Muted.Render(strings.Repeat("─", width)),
		center(Styles.Title.Render("☁")),
		center(Styles.Figure.Render(f.Title)),
		center(Styles.Muted.Render(f.Body)),
		"",
		center(row),
		"",
		center(Styles.Muted.Render(f.Copyright)),
		center(Styles.Muted.Render(strings.Join(f.Links, " · "))),
	)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
