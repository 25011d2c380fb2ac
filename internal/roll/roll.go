// Package roll holds the roll history model and the asynchronous
// evaluation task that feeds completed rolls back into the event loop.
package roll

import "time"

// Outcome is one completed roll. Immutable once created.
type Outcome struct {
	// Formula is the canonical rendering of the evaluated expression.
	Formula string
	// Result is the integer the expression rolled.
	Result int
	// At is when the evaluation finished. Display-only.
	At time.Time
}

// History is the ordered record of every roll this session, most recent
// first. It is written only from the program's update loop, so it carries
// no locking. Entries are never removed or edited.
type History struct {
	outcomes []Outcome
}

func NewHistory() *History {
	return &History{}
}

// Add prepends an outcome, keeping the most recent roll first.
func (h *History) Add(o Outcome) {
	h.outcomes = append([]Outcome{o}, h.outcomes...)
}

// List returns a copy of the history, most recent first.
func (h *History) List() []Outcome {
	out := make([]Outcome, len(h.outcomes))
	copy(out, h.outcomes)
	return out
}

func (h *History) Len() int {
	return len(h.outcomes)
}
