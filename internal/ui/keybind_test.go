package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC g s", tea.Quit, "Go to summary")
	reg.BindWithDesc("SPC g t", tea.Quit, "Go to team")

	top := reg.LeaderHints("")
	if top["q"] != "Quit" {
		t.Errorf("q hint = %q, want Quit", top["q"])
	}
	if top["g"] != "Go to" {
		t.Errorf("g hint = %q, want submenu label", top["g"])
	}

	sub := reg.LeaderHints("SPC g")
	if len(sub) != 2 || sub["s"] != "Go to summary" || sub["t"] != "Go to team" {
		t.Errorf("unexpected SPC g hints: %v", sub)
	}
}

func TestKeybindRegistry_BindingsSorted(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("1", tea.Quit, "Go to home")
	reg.Bind("x", tea.Quit) // no description, not listed

	b := reg.Bindings()
	if len(b) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(b))
	}
	if b[0].Help().Key != "1" || b[1].Help().Key != "q" {
		t.Errorf("unexpected order: %q, %q", b[0].Help().Key, b[1].Help().Key)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected a command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC g t", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("g"))
	if !consumed || cmd != nil || !h.LeaderWaiting {
		t.Fatalf("g: consumed=%v cmd=%v waiting=%v", consumed, cmd, h.LeaderWaiting)
	}
	if h.CurrentSeq() != "SPC g" {
		t.Errorf("CurrentSeq = %q", h.CurrentSeq())
	}
	_, cmd = h.Handle(keyMsg("t"))
	if cmd == nil {
		t.Error("expected SPC g t to resolve")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	if got := RenderKeybindHelp(h, 80); got != "" {
		t.Errorf("expected no help outside leader mode, got %q", got)
	}
	h.Handle(keyMsg(" "))
	got := RenderKeybindHelp(h, 80)
	for _, want := range []string{"SPC", "Quit", "cancel"} {
		if !strings.Contains(got, want) {
			t.Errorf("help bar missing %q:\n%s", want, got)
		}
	}
	if n := lipgloss.Height(got); n != 1 {
		t.Errorf("help bar is %d rows, want 1:\n%s", n, got)
	}
}

func TestRenderKeybindHelp_FitsWidth(t *testing.T) {
	reg := NewKeybindRegistry()
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		reg.BindWithDesc("SPC g "+k, tea.Quit, "A rather long description for "+k)
	}
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))
	h.Handle(keyMsg("g"))

	got := RenderKeybindHelp(h, 40)
	if w := lipgloss.Width(got); w > 40 {
		t.Errorf("help bar is %d cells wide, want <= 40:\n%s", w, got)
	}
	if n := lipgloss.Height(got); n != 1 {
		t.Errorf("help bar is %d rows, want 1", n)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
