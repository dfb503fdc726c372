package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpSheet lists every described keybinding.
type HelpSheet struct {
	bindings []key.Binding
}

var _ View = (*HelpSheet)(nil)

// NewHelpSheet snapshots the registry's bindings.
func NewHelpSheet(reg *KeybindRegistry) *HelpSheet {
	return &HelpSheet{bindings: reg.Bindings()}
}

// Init implements View.
func (h *HelpSheet) Init() tea.Cmd { return nil }

// Update implements View. The page closes the sheet; nothing to do here.
func (h *HelpSheet) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

// View implements View.
func (h *HelpSheet) View() string {
	m := newHelpModel()
	body := m.FullHelpView([][]key.Binding{h.bindings})
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Keys"),
		"",
		body,
		"",
		Styles.Muted.Render("esc / ? to close"),
	))
}
