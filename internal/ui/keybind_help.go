package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = m.Styles.ShortDesc
	m.Styles.FullSeparator = m.Styles.ShortSeparator
	return m
}

// RenderKeybindHelp produces the transient help bar shown while a leader
// sequence is pending. The bar is a single row cut to width; width <= 0 leaves it
// uncut. Returns "" when nothing follows the current sequence.
func RenderKeybindHelp(keyHandler *KeyHandler, width int) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 1 {
		currentSeq = keyHandler.CurrentSeq()
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	prefix := Styles.Title.Render(keyHandler.CurrentSeq()) + " "
	hm := newHelpModel()
	bar := lipgloss.NewStyle()
	if width > 0 {
		hm.Width = max(width-lipgloss.Width(prefix), 1)
		bar = bar.MaxWidth(width)
	}
	return bar.Render(prefix + hm.ShortHelpView(bindings))
}
