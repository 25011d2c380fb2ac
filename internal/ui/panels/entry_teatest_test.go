package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestEntryRendersTypedText(t *testing.T) {
	e := NewEntry()
	e.SetSize(60, 3)
	e.SetFocused(true)

	tm := teatest.NewTestModel(t, wrapEntry(&e), teatest.WithInitialTermSize(60, 3))
	waitForContains(t, tm, "Roll")

	tm.Type("4d10")
	waitForContains(t, tm, "4d10")

	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))

	if e.Value() != "4d10" {
		t.Errorf("expected value %q, got %q", "4d10", e.Value())
	}
}
