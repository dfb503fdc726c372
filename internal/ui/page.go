package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"cloudplaza/internal/chart"
	"cloudplaza/internal/deck"
	"cloudplaza/internal/scroll"
	"cloudplaza/internal/textutil"
)

const (
	statusHeight  = 1
	defaultWidth  = 80
	defaultHeight = 24
	minDocWidth   = 40
	maxDocWidth   = 100
	heroTarget    = deck.SectionSummary // hero call to action
)

// NavigateMsg activates the navigation control of a section.
type NavigateMsg struct {
	ID deck.SectionID
}

// CycleMsg activates the section Delta steps away from the active one.
type CycleMsg struct {
	Delta int
}

// ToggleHelpMsg opens or closes the help sheet.
type ToggleHelpMsg struct{}

// QuitMsg unmounts the page and ends the program.
type QuitMsg struct{}

type scrollFrameMsg struct{}

func frameTick() tea.Cmd {
	return tea.Tick(scroll.Frame, func(time.Time) tea.Msg { return scrollFrameMsg{} })
}

// PageModel is the page shell: nav bar, every section in order, footer.
// It owns the active-section state and the scroll subscription.
type PageModel struct {
	Deck     *deck.Deck
	Active   deck.SectionID
	Scrolled bool
	Feed     *scroll.Feed
	Keys     *KeyHandler
	Logger   *log.Logger

	// OnNavigate, when set, observes every navigation activation.
	OnNavigate func(deck.SectionID)

	sheet    View
	viewport viewport.Model
	anim     *scroll.Animator
	charts   charts
	doc      document
	width    int
	height   int
	release  func()
	start    deck.SectionID
}

var _ tea.Model = (*PageModel)(nil)

// NewPageModel creates the page for d with a private scroll feed, laid out for
// an 80x24 terminal until the first WindowSizeMsg arrives.
func NewPageModel(d *deck.Deck) *PageModel {
	m := &PageModel{
		Deck:     d,
		Active:   deck.SectionHome,
		Feed:     scroll.NewFeed(),
		Keys:     NewKeyHandler(newPageKeybinds()),
		Logger:   log.New(io.Discard),
		viewport: viewport.New(defaultWidth, defaultHeight-navHeight-statusHeight),
		anim:     scroll.NewAnimator(),
		charts:   newCharts(d),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func navigateCmd(id deck.SectionID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{ID: id} }
}

func newPageKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	quit := func() tea.Msg { return QuitMsg{} }
	help := func() tea.Msg { return ToggleHelpMsg{} }
	for _, id := range deck.Sections() {
		desc := "Go to " + string(id)
		reg.BindWithDesc(fmt.Sprintf("%d", id.Index()+1), navigateCmd(id), desc)
		reg.BindWithDesc("SPC g "+string(id)[:1], navigateCmd(id), desc)
	}
	reg.BindWithDesc("tab", func() tea.Msg { return CycleMsg{Delta: 1} }, "Next section")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return CycleMsg{Delta: -1} }, "Previous section")
	reg.BindWithDesc("?", help, "Help")
	reg.BindWithDesc("SPC ?", help, "Help")
	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("ctrl+c", quit, "Quit")
	reg.BindWithDesc("SPC q", quit, "Quit")
	return reg
}

// StartAt navigates to id once the first WindowSizeMsg has laid the page out.
func (m *PageModel) StartAt(id deck.SectionID) {
	m.start = id
}

// Mount subscribes the scroll observer. Calling it again while mounted is a no-op.
func (m *PageModel) Mount() {
	if m.release != nil {
		return
	}
	m.release = m.Feed.Subscribe(func(e scroll.Event) {
		m.Scrolled = scroll.Scrolled(e.Offset)
	})
	m.Logger.Debug("page mounted")
}

// Unmount releases the scroll subscription. Safe to call more than once.
func (m *PageModel) Unmount() {
	if m.release == nil {
		return
	}
	m.release()
	m.release = nil
	m.Logger.Debug("page unmounted")
}

// Mounted reports whether the scroll observer is subscribed.
func (m *PageModel) Mounted() bool { return m.release != nil }

// Init implements tea.Model.
func (m *PageModel) Init() tea.Cmd {
	m.Mount()
	return nil
}

// Update implements tea.Model.
func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if id := m.start; id != "" {
			m.start = ""
			return m, m.Navigate(id)
		}
		return m, nil
	case NavigateMsg:
		return m, m.Navigate(msg.ID)
	case CycleMsg:
		return m, m.Navigate(m.cycle(msg.Delta))
	case ToggleHelpMsg:
		if m.sheet != nil {
			m.sheet = nil
		} else {
			m.sheet = NewHelpSheet(m.Keys.Registry)
		}
		return m, nil
	case QuitMsg:
		m.Unmount()
		return m, tea.Quit
	case scrollFrameMsg:
		return m, m.stepScroll()
	case tea.MouseMsg:
		if m.sheet != nil {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if id, ok := m.nav().hitTest(msg.X, msg.Y); ok {
				return m, m.Navigate(id)
			}
		}
	case tea.KeyMsg:
		if m.sheet != nil {
			switch msg.String() {
			case "esc", "?":
				m.sheet = nil
				return m, nil
			case "ctrl+c":
				m.Unmount()
				return m, tea.Quit
			}
			return m, nil
		}
		if consumed, cmd := m.Keys.Handle(msg); consumed {
			return m, cmd
		}
		if msg.String() == "enter" && m.heroInView() {
			return m, m.Navigate(heroTarget)
		}
	}

	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.publishIfMoved(before)
	return m, cmd
}

// Navigate activates id: it becomes the active section and the viewport starts a
// smooth scroll to its anchor. A later call retargets a motion in flight. An id
// without a rendered anchor only changes the active section.
func (m *PageModel) Navigate(id deck.SectionID) tea.Cmd {
	if id.Index() < 0 {
		return nil
	}
	m.Active = id
	m.Logger.Debug("navigate", "section", id)
	if m.OnNavigate != nil {
		m.OnNavigate(id)
	}

	line, ok := m.doc.anchorOf(id)
	if !ok {
		return nil
	}
	if !m.anim.Start(m.viewport.YOffset, min(line, m.maxOffset())) {
		return nil
	}
	return frameTick()
}

func (m *PageModel) cycle(delta int) deck.SectionID {
	all := deck.Sections()
	n := len(all)
	i := ((m.Active.Index()+delta)%n + n) % n
	return all[i]
}

func (m *PageModel) stepScroll() tea.Cmd {
	off, done := m.anim.Step()
	before := m.viewport.YOffset
	m.viewport.SetYOffset(off)
	m.publishIfMoved(before)
	if done {
		return nil
	}
	return frameTick()
}

// ScrollTo jumps the viewport to offset without animation.
func (m *PageModel) ScrollTo(offset int) {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(offset)
	m.publishIfMoved(before)
}

func (m *PageModel) publishIfMoved(before int) {
	if m.viewport.YOffset != before {
		m.Feed.Publish(m.viewport.YOffset)
	}
}

// Offset is the current scroll offset in rows.
func (m *PageModel) Offset() int { return m.viewport.YOffset }

// Scrolling reports whether a smooth scroll is in flight.
func (m *PageModel) Scrolling() bool { return m.anim.Active() }

func (m *PageModel) maxOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

func (m *PageModel) heroInView() bool {
	line, ok := m.doc.anchorOf(deck.SectionSummary)
	return ok && m.viewport.YOffset < line
}

// Containers returns the rendered section containers in document order.
func (m *PageModel) Containers() []deck.SectionID {
	out := make([]deck.SectionID, len(m.doc.anchors))
	for i, a := range m.doc.anchors {
		out[i] = a.ID
	}
	return out
}

// AnchorLine returns the document line where a section starts.
func (m *PageModel) AnchorLine(id deck.SectionID) (int, bool) {
	return m.doc.anchorOf(id)
}

// RevenueChart is the finance section's scenario chart.
func (m *PageModel) RevenueChart() *chart.Bar[deck.FinancialMetric] { return m.charts.revenue }

// Content is the full document behind the viewport.
func (m *PageModel) Content() string { return m.doc.content }

func (m *PageModel) resize(width, height int) {
	m.width, m.height = width, height
	docW := min(max(width-2, minDocWidth), maxDocWidth)
	vpH := max(height-navHeight-statusHeight, 1)

	m.doc = layoutDocument(m.Deck, m.charts, docW, vpH)
	before := m.viewport.YOffset
	m.viewport.Width = width
	m.viewport.Height = vpH
	m.viewport.SetContent(lipgloss.PlaceHorizontal(max(width, docW), lipgloss.Center, m.doc.content))
	m.viewport.SetYOffset(before)
	m.publishIfMoved(before)
}

func (m *PageModel) nav() navBar {
	return layoutNav(m.Deck.Brand, m.Active, m.Scrolled, m.width)
}

func (m *PageModel) statusLine() string {
	hints := "1-6 sections · tab next · SPC commands · ? help · q quit"
	pct := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	pct = textutil.PadLeft(pct, max(m.width-textutil.Width(hints), textutil.Width(pct)+1))
	return Styles.Status.MaxWidth(max(m.width, 1)).Render(hints + pct)
}

// View implements tea.Model.
func (m *PageModel) View() string {
	body := m.viewport.View()
	if m.sheet != nil {
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.sheet.View())
	}
	status := m.statusLine()
	if help := RenderKeybindHelp(m.Keys, m.width); help != "" {
		status = help
	}
	return m.nav().view + "\n" + body + "\n" + status
}
