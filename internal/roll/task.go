package roll

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollwright/d20roll/internal/dice"
)

// CompletedMsg is delivered to the update loop when an evaluation task
// finishes successfully.
type CompletedMsg struct {
	Outcome Outcome
}

// Evaluate returns a command that evaluates expr off the update goroutine.
// The expression is captured at call time, so edits made while the roll is
// in flight cannot affect it. Tasks are independent: completions arrive in
// whatever order they finish, and a spawned task is never canceled.
func Evaluate(expr string, roller *dice.Roller) tea.Cmd {
	return func() tea.Msg {
		res, err := roller.Roll(expr)
		if err != nil {
			// Invalid expressions are discarded without any user-visible
			// feedback. This is the only place an evaluation error is
			// swallowed; surface it here if that ever changes.
			return nil
		}
		return CompletedMsg{Outcome: Outcome{
			Formula: res.Formula,
			Result:  res.Value,
			At:      time.Now(),
		}}
	}
}
