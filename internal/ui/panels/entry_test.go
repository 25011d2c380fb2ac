package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(e Entry, s string) Entry {
	for _, r := range s {
		e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return e
}

func TestEntryTyping(t *testing.T) {
	e := NewEntry()
	e.SetSize(60, 3)

	e = typeInto(e, "3d8 - 2")
	if e.Value() != "3d8 - 2" {
		t.Errorf("expected value %q, got %q", "3d8 - 2", e.Value())
	}
}

func TestEntryEnterDoesNotClearWidget(t *testing.T) {
	// Submit is decided by the app's key map, and clearing is the app's
	// job after it captures the text; the widget keeps its contents until
	// SetText pushes the new value down.
	e := NewEntry()
	e = typeInto(e, "2d6")

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if e.Value() != "2d6" {
		t.Errorf("expected widget text preserved, got %q", e.Value())
	}
}

func TestEntrySetText(t *testing.T) {
	e := NewEntry()
	e = typeInto(e, "1d20")

	e.SetText("")
	if e.Value() != "" {
		t.Errorf("expected empty value after SetText, got %q", e.Value())
	}

	e.SetText("4d6")
	if e.Value() != "4d6" {
		t.Errorf("expected value %q, got %q", "4d6", e.Value())
	}
}

func TestEntryViewShowsTitleAndHints(t *testing.T) {
	e := NewEntry()
	e.SetSize(60, 3)
	e.SetFocused(true)

	view := e.View()
	if !strings.Contains(view, "Roll") {
		t.Error("expected 'Roll' title in view")
	}
	if !strings.Contains(view, "roll") {
		t.Error("expected keybind hint in focused view")
	}

	e.SetFocused(false)
	view = e.View()
	if strings.Contains(view, "Tab") {
		t.Error("expected no keybind hints when unfocused")
	}
}

func TestEntryPlaceholder(t *testing.T) {
	e := NewEntry()
	e.SetSize(60, 3)

	view := e.View()
	if !strings.Contains(view, "2d6 + 1") {
		t.Error("expected placeholder in empty entry view")
	}
}
