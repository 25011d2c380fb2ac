package panels

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollwright/d20roll/internal/roll"
	"github.com/rollwright/d20roll/internal/ui/border"
	"github.com/rollwright/d20roll/internal/ui/styles"
	"github.com/rollwright/d20roll/internal/ui/text"
)

// Column widths for the history table.
const (
	colResultW = 7
	colTimeW   = 12
)

// History is the scrollable table of past rolls, most recent first. It
// renders a cached projection of the model's history; Refresh rebuilds the
// whole projection whenever the app appends an outcome. Selection exists
// only for yanking a row and never mutates the history.
type History struct {
	history        *roll.History
	rows           []roll.Outcome
	selected       int
	offset         int
	width          int
	height         int
	focused        bool
	showTimestamps bool
	lastKeyG       bool
	lastKeyT       time.Time
}

func NewHistory(h *roll.History, showTimestamps bool) History {
	ht := History{
		history:        h,
		showTimestamps: showTimestamps,
	}
	ht.Refresh()
	return ht
}

// Refresh rebuilds the displayed rows from the model. The whole visible
// list is replaced; with session-sized histories the O(n) rebuild is cheap.
func (h *History) Refresh() {
	h.rows = h.history.List()
	h.clampSelection()
}

func (h History) Update(msg tea.Msg) (History, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if h.selected < len(h.rows)-1 {
			h.selected++
			h.scrollToSelection()
		}
		h.lastKeyG = false
	case "k", "up":
		if h.selected > 0 {
			h.selected--
			h.scrollToSelection()
		}
		h.lastKeyG = false
	case "y":
		if sel := h.SelectedOutcome(); sel != nil {
			yank := fmt.Sprintf("%s = %d", sel.Formula, sel.Result)
			return h, func() tea.Msg { return YankMsg{Text: yank} }
		}
	case "G":
		h.selected = max(len(h.rows)-1, 0)
		h.scrollToSelection()
		h.lastKeyG = false
	case "g":
		if h.lastKeyG && time.Since(h.lastKeyT) < 500*time.Millisecond {
			h.selected = 0
			h.scrollToSelection()
			h.lastKeyG = false
		} else {
			h.lastKeyG = true
			h.lastKeyT = time.Now()
		}
	default:
		h.lastKeyG = false
	}
	return h, nil
}

func (h History) View() string {
	innerWidth := h.width - 2
	innerHeight := h.height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	noun := "rolls"
	if len(h.rows) == 1 {
		noun = "roll"
	}
	title := fmt.Sprintf("History (%d %s)", len(h.rows), noun)

	var keybinds []border.Keybind
	if h.focused {
		keybinds = []border.Keybind{
			{Key: "j/k", Label: " move"},
			{Key: "y", Label: "ank"},
			{Key: "?", Label: "help"},
		}
	}

	content := h.renderContent(innerWidth, innerHeight)
	return border.RenderPanel(title, content, keybinds, h.width, h.height, h.focused)
}

func (h History) renderContent(width, height int) string {
	if len(h.rows) == 0 {
		return "No rolls yet. Type an expression and press enter."
	}

	var b strings.Builder

	availableRows := height

	formulaW := h.formulaWidth(width)

	header := text.PadLeft("RESULT", colResultW) + "  " + text.PadRight("FORMULA", formulaW)
	if h.showTimestamps {
		header += "  " + text.PadRight("ROLLED", colTimeW)
	}
	b.WriteString(styles.TextSecondaryStyle.Render(text.Truncate(header, width)))
	b.WriteString("\n")
	availableRows--

	if h.offset > 0 {
		b.WriteString(styles.TextDimStyle.Render("  ▲"))
		b.WriteString("\n")
		availableRows--
	}

	end := h.offset + availableRows
	if end > len(h.rows) {
		end = len(h.rows)
	}
	// Reserve a row for the bottom scroll indicator if needed
	if end < len(h.rows) && availableRows > 1 {
		end = h.offset + availableRows - 1
		if end > len(h.rows) {
			end = len(h.rows)
		}
	}

	for i := h.offset; i < end; i++ {
		o := h.rows[i]

		result := text.PadLeft(fmt.Sprintf("%d", o.Result), colResultW)
		formula := text.PadRight(text.Truncate(o.Formula, formulaW), formulaW)

		var line string
		if h.focused && i == h.selected {
			// Plain text for the selected row so the background covers
			// the entire line.
			plainLine := result + "  " + formula
			if h.showTimestamps {
				plainLine += "  " + text.PadRight(text.RelativeTime(o.At), colTimeW)
			}
			plainLine = text.Truncate(plainLine, width)
			line = styles.SelectedRowStyle.Width(width).Render(plainLine)
		} else {
			line = styles.ResultValueStyle.Render(result) + "  " + styles.TextPrimaryStyle.Render(formula)
			if h.showTimestamps {
				line += "  " + styles.TextDimStyle.Render(text.PadRight(text.RelativeTime(o.At), colTimeW))
			}
			line = text.Truncate(line, width)
		}

		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(h.rows) {
		b.WriteString("\n")
		b.WriteString(styles.TextDimStyle.Render("  ▼"))
	}

	return b.String()
}

func (h History) formulaWidth(width int) int {
	w := width - colResultW - 2
	if h.showTimestamps {
		w -= colTimeW + 2
	}
	if w < 8 {
		w = 8
	}
	return w
}

func (h *History) SetSize(w, ht int) {
	h.width = w
	h.height = ht
	h.clampSelection()
}

func (h *History) SetFocused(focused bool) {
	h.focused = focused
}

// SelectedOutcome returns a copy of the selected row, or nil when empty.
func (h History) SelectedOutcome() *roll.Outcome {
	if len(h.rows) == 0 || h.selected >= len(h.rows) {
		return nil
	}
	o := h.rows[h.selected]
	return &o
}

func (h *History) clampSelection() {
	if len(h.rows) == 0 {
		h.selected = 0
		h.offset = 0
		return
	}
	if h.selected >= len(h.rows) {
		h.selected = len(h.rows) - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}
	h.scrollToSelection()
}

func (h *History) scrollToSelection() {
	visible := h.visibleRows()
	if visible <= 0 {
		return
	}
	if h.selected < h.offset {
		h.offset = h.selected
	}
	if h.selected >= h.offset+visible {
		h.offset = h.selected - visible + 1
	}
	maxOffset := len(h.rows) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if h.offset > maxOffset {
		h.offset = maxOffset
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

func (h History) visibleRows() int {
	rows := h.height - 2 // border top/bottom
	rows--               // column header
	if h.offset > 0 {
		rows--
	}
	if h.offset+rows < len(h.rows) {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
