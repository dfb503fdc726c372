// Package site renders the deck as a single static HTML page.
package site

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"cloudplaza/internal/deck"
	"cloudplaza/internal/scroll"
)

var seriesColors = [3]string{"#94a3b8", "#3b82f6", "#10b981"}

var shareColors = []string{"#3b82f6", "#f97316", "#10b981", "#a855f7", "#f59e0b"}

// Render writes the complete HTML document for d.
func Render(w io.Writer, d *deck.Deck) error {
	p := &page{deck: d}
	doc := c.HTML5(c.HTML5Props{
		Title:       d.Brand,
		Description: d.Hero.Kicker,
		Language:    "zh-CN",
		Head: []g.Node{
			h.StyleEl(g.Raw(stylesheet)),
		},
		Body: []g.Node{
			p.nav(),
			h.Main(g.Map(deck.Sections(), p.section)),
			p.footer(),
			h.Script(g.Raw(script())),
		},
	})
	if p.err != nil {
		return p.err
	}
	if err := doc.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return p.err
}

// page carries the first error hit while building nodes.
type page struct {
	deck *deck.Deck
	err  error
}

// chartData carries rows, encoded as JSON, on the data-chart attribute.
func (p *page) chartData(kind string, rows any) g.Node {
	b, err := json.Marshal(rows)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("encode %s chart data: %w", kind, err)
		}
		return g.Group(nil)
	}
	return g.Group{h.Data("kind", kind), h.Data("chart", string(b))}
}

func (p *page) nav() g.Node {
	items := make([]g.Node, 0, len(deck.Sections()))
	for _, id := range deck.Sections() {
		if id == deck.SectionHome {
			continue
		}
		items = append(items, h.A(
			h.Href("#"+string(id)),
			h.Class("nav-item"),
			h.Data("nav", string(id)),
			h.Span(h.Class("glyph"), g.Text(id.Glyph())),
			h.Span(g.Text(id.Label())),
		))
	}
	return h.Nav(h.ID("nav"),
		h.A(h.Href("#"+string(deck.SectionHome)), h.Class("brand"), h.Data("nav", string(deck.SectionHome)),
			h.Span(h.Class("glyph"), g.Text(deck.SectionHome.Glyph())),
			g.Text(p.deck.Brand),
		),
		h.Div(h.Class("nav-items"), g.Group(items)),
	)
}

func (p *page) section(id deck.SectionID) g.Node {
	var body g.Node
	switch id {
	case deck.SectionHome:
		body = p.hero()
	case deck.SectionSummary:
		body = p.summary()
	case deck.SectionMarket:
		body = p.market()
	case deck.SectionProducts:
		body = p.products()
	case deck.SectionFinance:
		body = p.finance()
	case deck.SectionTeam:
		body = p.team()
	}
	return h.Section(h.ID(string(id)), h.Class("section section-"+string(id)), body)
}

func heading(title string) g.Node {
	return h.Div(h.Class("heading"), h.H2(g.Text(title)), h.Div(h.Class("rule")))
}

func (p *page) hero() g.Node {
	hero := p.deck.Hero
	return h.Div(h.Class("hero"),
		h.Div(h.Class("kicker"), g.Text(hero.Kicker)),
		h.H1(g.Text(hero.Title), h.Br(), h.Span(h.Class("accent"), g.Text(hero.Subtitle))),
		h.P(h.Class("tagline"), g.Text(hero.Tagline)),
		h.Div(h.Class("actions"),
			h.A(h.Href("#"+string(deck.SectionSummary)), h.Class("button"), h.Data("nav", string(deck.SectionSummary)),
				g.Text(hero.Action+" →")),
			h.Span(h.Class("muted"), g.Text("⌖ "+hero.Location)),
		),
	)
}

func (p *page) summary() g.Node {
	s := p.deck.Summary
	return g.Group{
		heading(s.Title),
		h.Div(h.Class("grid two"),
			h.Div(
				h.Div(h.Class("card vision"), h.H3(g.Text("我们的愿景")), h.P(g.Text(s.Vision))),
				h.Div(h.Class("grid two"), g.Map(s.Space, func(info deck.SpaceInfo) g.Node {
					return h.Div(h.Class("card"),
						h.P(h.Class("muted"), g.Text(info.Label)),
						h.P(h.Class("figure"), g.Text(info.Value)),
						h.P(h.Class("small muted"), g.Text(info.Sub)),
					)
				})),
			),
			h.Div(
				h.Img(h.Src(s.Image), h.Alt("Cloud Plaza"), h.Class("photo")),
				h.Div(h.Class("card note"), h.H3(g.Text(s.NoteTitle)), h.P(g.Text(s.Note))),
			),
		),
	}
}

func (p *page) market() g.Node {
	m := p.deck.Market
	return g.Group{
		heading(m.Title),
		h.Div(h.Class("grid two"),
			h.Div(h.Class("card"),
				h.H3(g.Text(m.TrendTitle)),
				p.lineChart(m.Trend, m.TrendUnit),
				h.P(h.Class("small muted center"), g.Text(m.TrendCaption)),
			),
			h.Div(
				h.Div(h.Class("card"),
					h.H3(g.Text("SWOT 分析")),
					h.Ul(h.Class("swot"), g.Map(m.SWOT, func(e deck.SWOTEntry) g.Node {
						return h.Li(h.Span(h.Class("letter letter-"+strings.ToLower(e.Letter)), g.Text(e.Letter)), g.Text(e.Text))
					})),
				),
				h.Div(h.Class("card dark"),
					h.H3(g.Text(m.AudienceTitle)),
					p.donut("audience", m.Audience),
				),
			),
		),
	}
}

func (p *page) products() g.Node {
	pr := p.deck.Products
	return g.Group{
		heading(pr.Title),
		h.Div(h.Class("grid two"), g.Map(pr.Offerings, func(o deck.Offering) g.Node {
			return h.Div(h.Class("card offering"),
				h.Img(h.Src(o.Image), h.Alt(o.Title), h.Class("photo")),
				h.Span(h.Class("badge"), g.Text(o.Badge)),
				h.H3(g.Text(o.Title)),
				h.Ul(g.Map(o.Points, func(pt string) g.Node { return h.Li(g.Text(pt)) })),
			)
		})),
	}
}

func (p *page) finance() g.Node {
	f := p.deck.Finance
	return g.Group{
		heading(f.Title),
		h.Div(h.Class("grid two"),
			h.Div(
				h.Div(h.Class("grid two"), g.Map(f.Highlights, func(hl deck.Highlight) g.Node {
					return h.Div(h.Class("card dark"),
						h.P(h.Class("muted"), g.Text(hl.Label)),
						h.P(h.Class("figure"), g.Text(hl.Value)),
					)
				})),
				h.Div(h.Class("card dark"),
					h.H3(g.Text(f.MixTitle)),
					p.stackedBar("revenue-mix", f.RevenueMix),
				),
			),
			h.Div(h.Class("card"),
				h.H3(g.Text(f.RevenueTitle)),
				p.barChart(f.Revenue),
			),
		),
	}
}

func (p *page) team() g.Node {
	t := p.deck.Team
	return g.Group{
		heading(t.Title),
		h.P(h.Class("muted center"), g.Text(t.Intro)),
		h.Div(h.Class("grid three"), g.Map(t.Founders, func(f deck.Founder) g.Node {
			return h.Div(h.Class("card founder"),
				h.Img(h.Src(f.Image), h.Alt(f.Name), h.Class("avatar")),
				h.H3(g.Text(f.Name)),
				h.P(h.Class("role"), g.Text(f.Role)),
				h.P(g.Text(f.Description)),
				h.P(h.Class("small muted"), g.Text("近期成就")),
				h.Ul(h.Class("achievements"), g.Map(f.Achievements, func(a string) g.Node { return h.Li(g.Text(a)) })),
			)
		})),
	}
}

func (p *page) footer() g.Node {
	f := p.deck.Footer
	return h.Footer(
		h.H2(g.Text(f.Title)),
		h.P(h.Class("muted"), g.Text(f.Body)),
		h.Div(h.Class("stats"), g.Map(f.Stats, func(s deck.Stat) g.Node {
			return h.Div(h.Class("stat"), h.Span(h.Class("figure"), g.Text(s.Value)), h.Span(h.Class("small"), g.Text(s.Caption)))
		})),
		h.Div(h.Class("legal"),
			h.Span(g.Text(f.Copyright)),
			h.Div(g.Map(f.Links, func(l string) g.Node { return h.A(h.Href("#"), g.Text(l)) })),
		),
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func script() string {
	return fmt.Sprintf(`(function () {
  var nav = document.getElementById("nav");
  window.addEventListener("scroll", function () {
    nav.classList.toggle("scrolled", window.scrollY > %d);
  });
  var items = document.querySelectorAll("[data-nav]");
  items.forEach(function (el) {
    el.addEventListener("click", function (ev) {
      ev.preventDefault();
      var id = el.getAttribute("data-nav");
      items.forEach(function (o) {
        o.classList.toggle("active", o.getAttribute("data-nav") === id);
      });
      var target = document.getElementById(id);
      if (target) { target.scrollIntoView({ behavior: "smooth" }); }
    });
  });
})();`, scroll.Threshold)
}
