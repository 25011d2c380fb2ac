package panels

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

// wrapEntry creates a tea.Model adapter around an Entry for teatest use.
func wrapEntry(e *Entry) tea.Model {
	return panelAdapter{
		view: func() string { return e.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newE, cmd := e.Update(msg)
			*e = newE
			return cmd
		},
	}
}

// wrapHistory creates a tea.Model adapter around a History for teatest use.
func wrapHistory(h *History) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newH, cmd := h.Update(msg)
			*h = newH
			return cmd
		},
	}
}

// wrapStatusBar creates a tea.Model adapter around a StatusBar for teatest use.
// StatusBar has no Update method, so the adapter uses a no-op.
func wrapStatusBar(sb *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return sb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// accumOutput retains everything read from a TestModel's output so that
// successive WaitFor calls see the full output, not just bytes produced
// after the previous call (teatest.WaitFor drains the reader).
type accumOutput struct {
	src  io.Reader
	seen []byte
}

var accumOutputs sync.Map // *teatest.TestModel -> *accumOutput

// accumPass replays already-seen output, then keeps reading live output.
// It reports io.EOF only when the live source is currently drained, so a
// re-read on the next WaitFor tick picks up new frames.
type accumPass struct {
	a   *accumOutput
	pos int
}

func (p *accumPass) Read(buf []byte) (int, error) {
	if p.pos < len(p.a.seen) {
		n := copy(buf, p.a.seen[p.pos:])
		p.pos += n
		return n, nil
	}
	n, err := p.a.src.Read(buf)
	p.a.seen = append(p.a.seen, buf[:n]...)
	p.pos += n
	return n, err
}

func outputFor(tm *teatest.TestModel) io.Reader {
	v, _ := accumOutputs.LoadOrStore(tm, &accumOutput{src: tm.Output()})
	return &accumPass{a: v.(*accumOutput)}
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		outputFor(tm),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
