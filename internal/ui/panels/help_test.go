package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpOverlayCloseKeys(t *testing.T) {
	for _, k := range []string{"esc", "?", "q"} {
		h := NewHelpOverlay()

		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		_, cmd := h.Update(msg)
		if cmd == nil {
			t.Fatalf("expected close command for %q", k)
		}
		if _, ok := cmd().(CloseOverlayMsg); !ok {
			t.Errorf("expected CloseOverlayMsg for %q, got %T", k, cmd())
		}
	}
}

func TestHelpOverlayIgnoresOtherKeys(t *testing.T) {
	h := NewHelpOverlay()
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}

func TestHelpOverlaySections(t *testing.T) {
	h := NewHelpOverlay()
	view := h.View()

	for _, want := range []string{"Rolling", "History", "Notation", "Global", "NdS", "d%"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in help overlay", want)
		}
	}
}
