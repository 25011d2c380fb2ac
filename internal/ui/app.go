package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rollwright/d20roll/internal/config"
	"github.com/rollwright/d20roll/internal/dice"
	"github.com/rollwright/d20roll/internal/roll"
	"github.com/rollwright/d20roll/internal/ui/clipboard"
	"github.com/rollwright/d20roll/internal/ui/layout"
	"github.com/rollwright/d20roll/internal/ui/panels"
	"github.com/rollwright/d20roll/internal/ui/styles"
)

const (
	panelEntry   = 0
	panelHistory = 1
	numPanels    = 2
)

type appState int

const (
	stateRunning appState = iota
	stateTerminated
)

// App is the reactive core: the model fields (entry, history, state) are
// written only inside Update, and every view region is resynced from them
// right after the mutation that dirtied it. Roll evaluation runs in
// background commands whose completion re-enters Update as roll.CompletedMsg.
type App struct {
	cfg    *config.Config
	roller *dice.Roller

	// Model — single source of truth.
	entry   string
	history *roll.History
	state   appState

	width        int
	height       int
	layout       layout.Layout
	focusedPanel int
	entryPanel   panels.Entry
	historyPanel panels.History
	statusBar    panels.StatusBar
	helpOverlay  *panels.HelpOverlay
	keys         KeyMap
	ready        bool
}

func NewApp(cfg *config.Config) App {
	roller := dice.NewRoller(cfg.Dice.Seed, dice.Limits{
		MaxDice:  cfg.Dice.MaxDice,
		MaxSides: cfg.Dice.MaxSides,
	})
	history := roll.NewHistory()

	showTimestamps := cfg.UI.ShowTimestamps == nil || *cfg.UI.ShowTimestamps

	ep := panels.NewEntry()
	ep.SetFocused(true)

	return App{
		cfg:          cfg,
		roller:       roller,
		history:      history,
		entryPanel:   ep,
		historyPanel: panels.NewHistory(history, showTimestamps),
		statusBar:    panels.NewStatusBar(time.Duration(cfg.UI.FlashSeconds) * time.Second),
		keys:         DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return a.entryPanel.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.state == stateTerminated {
		// Terminal state: no event mutates the model or touches the view,
		// including completions of rolls still in flight.
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case panels.SubmitMsg:
		// Capture the expression as it stands in the model, then clear.
		// The spawned task holds the captured text, so edits made while
		// the roll is in flight cannot affect it.
		expr := a.entry
		cmd := roll.Evaluate(expr, a.roller)
		a.entry = ""
		a.syncEntry()
		return a, cmd

	case roll.CompletedMsg:
		a.history.Add(msg.Outcome)
		a.syncHistory()
		return a, nil

	case panels.YankMsg:
		flash, level := "Copied to clipboard", panels.FlashSuccess
		if err := clipboard.Write(msg.Text); err != nil {
			flash, level = "Clipboard copy failed", panels.FlashError
		}
		a.statusBar.SetFlashWithLevel(flash, level)
		return a, tea.Tick(a.statusBar.FlashDuration(), func(time.Time) tea.Msg {
			return panels.ClearFlashMsg{}
		})

	case panels.ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case panels.CloseOverlayMsg:
		a.helpOverlay = nil
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.helpOverlay != nil {
		var cmd tea.Cmd
		*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.shutdown()
	case key.Matches(msg, a.keys.FocusNext):
		a.focusedPanel = (a.focusedPanel + 1) % numPanels
		a.updateFocusState()
		return a, nil
	}

	if a.focusedPanel == panelHistory {
		switch {
		case key.Matches(msg, a.keys.QuitHistory):
			return a.shutdown()
		case key.Matches(msg, a.keys.Help):
			a.helpOverlay = panels.NewHelpOverlay()
			return a, nil
		}
		var cmd tea.Cmd
		a.historyPanel, cmd = a.historyPanel.Update(msg)
		return a, cmd
	}

	if key.Matches(msg, a.keys.Submit) {
		return a, func() tea.Msg { return panels.SubmitMsg{} }
	}

	// Entry focused: the keystroke may have changed the widget text, so
	// copy it into the model and resync the projection.
	var cmd tea.Cmd
	a.entryPanel, cmd = a.entryPanel.Update(msg)
	a.entry = a.entryPanel.Value()
	a.syncEntry()
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	full := lipgloss.JoinVertical(lipgloss.Left,
		a.entryPanel.View(),
		a.historyPanel.View(),
		a.statusBar.View(),
	)

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}

	return full
}

func (a App) shutdown() (tea.Model, tea.Cmd) {
	a.state = stateTerminated
	return a, tea.Quit
}

// syncEntry pushes the model's entry text into the input widget.
func (a *App) syncEntry() {
	a.entryPanel.SetText(a.entry)
}

// syncHistory rebuilds the table projection from the model's history.
func (a *App) syncHistory() {
	a.historyPanel.Refresh()
	a.statusBar.SetRolls(a.history.Len())
}

func (a *App) propagateSizes() {
	l := a.layout
	a.entryPanel.SetSize(l.EntryWidth, l.EntryHeight)
	a.historyPanel.SetSize(l.HistoryWidth, l.HistoryHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}

func (a *App) updateFocusState() {
	a.entryPanel.SetFocused(a.focusedPanel == panelEntry)
	a.historyPanel.SetFocused(a.focusedPanel == panelHistory)
}
