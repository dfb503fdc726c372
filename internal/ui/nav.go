package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cloudplaza/internal/deck"
	"cloudplaza/internal/textutil"
)

// navHeight is the number of terminal rows the nav bar occupies.
const navHeight = 2

// navHit is the clickable column range [X0, X1) of one nav control on row 0.
type navHit struct {
	ID     deck.SectionID
	X0, X1 int
}

type navBar struct {
	view string
	hits []navHit
}

type navItem struct {
	id   deck.SectionID
	view string
}

// navItems renders one item per section after home. Compact items drop the label
// and keep the key digit and glyph.
func navItems(active deck.SectionID, compact bool) ([]navItem, int) {
	var (
		items []navItem
		total int
	)
	for _, id := range deck.Sections() {
		if id == deck.SectionHome {
			continue
		}
		text := strconv.Itoa(id.Index()+1) + " " + id.Glyph()
		if !compact {
			text += " " + id.Label()
		}
		st := Styles.NavItem
		if id == active {
			st = Styles.NavItemActive
		}
		v := st.Render(text)
		items = append(items, navItem{id: id, view: v})
		total += lipgloss.Width(v)
	}
	return items, total
}

// layoutNav renders the bar. The brand is the home control; the other sections
// get one item each, right-aligned. Only items carry the active treatment.
// On narrow terminals the item labels go first, then the brand is truncated.
func layoutNav(brand string, active deck.SectionID, scrolled bool, width int) navBar {
	brandFrame := Styles.NavBrand.GetHorizontalFrameSize()
	minBrandW := brandFrame + 2

	items, itemsW := navItems(active, false)
	if itemsW+1+minBrandW > width {
		items, itemsW = navItems(active, true)
	}

	brandText := deck.SectionHome.Glyph() + " " + brand
	room := width - itemsW - 1 - brandFrame
	brandView := Styles.NavBrand.Render(textutil.Truncate(brandText, max(room, 2)))
	brandW := lipgloss.Width(brandView)

	gap := max(width-brandW-itemsW, 1)

	var hits []navHit
	addHit := func(id deck.SectionID, x0, x1 int) {
		// Columns past the bar are clipped by MaxWidth below.
		if x1 = min(x1, width); x0 < x1 {
			hits = append(hits, navHit{ID: id, X0: x0, X1: x1})
		}
	}
	addHit(deck.SectionHome, 0, brandW)

	var b strings.Builder
	b.WriteString(brandView)
	b.WriteString(strings.Repeat(" ", gap))
	x := brandW + gap
	for _, it := range items {
		w := lipgloss.Width(it.view)
		addHit(it.id, x, x+w)
		b.WriteString(it.view)
		x += w
	}

	bar, rule := Styles.NavClear, strings.Repeat(" ", max(width, 0))
	if scrolled {
		bar = Styles.NavSolid
		rule = Styles.NavRule.Render(strings.Repeat("─", max(width, 0)))
	}
	return navBar{
		view: bar.MaxWidth(max(width, 1)).Render(b.String()) + "\n" + rule,
		hits: hits,
	}
}

// hitTest returns the control under column x of the nav bar's first row.
func (n navBar) hitTest(x, y int) (deck.SectionID, bool) {
	if y != 0 {
		return "", false
	}
	for _, h := range n.hits {
		if x >= h.X0 && x < h.X1 {
			return h.ID, true
		}
	}
	return "", false
}
