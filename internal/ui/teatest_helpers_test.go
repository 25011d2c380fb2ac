package ui

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/rollwright/d20roll/internal/config"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) behind a pointer so test
// assertions can inspect the model state after teatest pumps messages
// through it.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB) *appAdapter {
	tb.Helper()
	cfg := config.DefaultConfig()
	cfg.Dice.Seed = 42
	return &appAdapter{app: NewApp(&cfg)}
}

func (a *appAdapter) Init() tea.Cmd {
	return a.app.Init()
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

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
