package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// panicNotice is what the session shows in place of whatever blew up.
const panicNotice = "Something went wrong (details in the log file)"

// guard wraps the program model so a panic in an update or view cannot
// tear down the terminal. The incident lands in the log with its stack
// and the converter drops back to an empty prompt.
type guard struct {
	inner tea.Model
	log   *slog.Logger
}

func newGuard(inner tea.Model, log *slog.Logger) guard {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return guard{inner: inner, log: log}
}

func (g guard) Init() tea.Cmd { return g.inner.Init() }

func (g guard) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		g.logPanic("update", r)
		if m, ok := g.inner.(model); ok {
			g.inner = m.afterPanic()
		}
		next, cmd = g, nil
	}()

	out, c := g.inner.Update(msg)
	g.inner = out
	return g, c
}

func (g guard) View() (view string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		g.logPanic("view", r)
		view = panicNotice
	}()
	return g.inner.View()
}

func (g guard) logPanic(where string, r any) {
	g.log.Error("tui.panic",
		"in", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = guard{}
