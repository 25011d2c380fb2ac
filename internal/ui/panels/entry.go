package panels

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollwright/d20roll/internal/ui/border"
)

// Entry is the dice-expression input panel. The text it displays is a
// projection of the app model's entry text: keystrokes update the widget,
// the app copies the widget value into the model, and SetText pushes the
// authoritative value back down.
type Entry struct {
	input   textinput.Model
	width   int
	height  int
	focused bool
}

func NewEntry() Entry {
	ti := textinput.New()
	ti.Placeholder = "2d6 + 1"
	ti.CharLimit = 128
	ti.Prompt = "> "
	ti.Focus()

	return Entry{input: ti}
}

func (e Entry) Init() tea.Cmd {
	return textinput.Blink
}

func (e Entry) Update(msg tea.Msg) (Entry, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e Entry) View() string {
	var keybinds []border.Keybind
	if e.focused {
		keybinds = []border.Keybind{
			{Key: "↵", Label: " roll"},
			{Key: "Tab", Label: " history"},
		}
	}
	return border.RenderPanel("Roll", e.input.View(), keybinds, e.width, e.height, e.focused)
}

// Value returns the current widget text.
func (e Entry) Value() string {
	return e.input.Value()
}

// SetText replaces the widget text with the model's authoritative value.
func (e *Entry) SetText(s string) {
	e.input.SetValue(s)
	e.input.CursorEnd()
}

func (e *Entry) SetSize(w, h int) {
	e.width = w
	e.height = h
	e.input.Width = w - 6 // borders, prompt, padding
}

func (e *Entry) SetFocused(focused bool) {
	e.focused = focused
	if focused {
		e.input.Focus()
	} else {
		e.input.Blur()
	}
}
