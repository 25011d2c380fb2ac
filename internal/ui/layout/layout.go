package layout

// Layout holds the computed cell dimensions for all panels. The window is a
// single column: entry panel on top, history table below, status bar last.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	EntryWidth  int
	EntryHeight int

	HistoryWidth  int
	HistoryHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 40
	MinHeight = 10

	// The entry panel is one input row plus its border.
	entryRows = 3
)

// Calculate computes panel dimensions from terminal size. Subtracts 1 row
// for the status bar and gives the entry panel a fixed height; the history
// table takes the rest. Returns TooSmall=true if under minimum.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	usableHeight := termHeight - 1 // status bar

	l.EntryWidth = termWidth
	l.EntryHeight = entryRows

	l.HistoryWidth = termWidth
	l.HistoryHeight = usableHeight - entryRows

	l.StatusBarWidth = termWidth

	return l
}
