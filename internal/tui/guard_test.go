package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// explodingModel panics on demand so the guard's recovery paths can be
// driven without corrupting the real model.
type explodingModel struct {
	onView bool
}

func (explodingModel) Init() tea.Cmd { return nil }

func (e explodingModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	if !e.onView {
		panic("update blew up")
	}
	return e, nil
}

func (e explodingModel) View() string {
	if e.onView {
		panic("view blew up")
	}
	return "still here"
}

func TestGuard_PassesMessagesThrough(t *testing.T) {
	g := newGuard(newModel(Deps{}), nil)

	next, _ := g.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3409ee9")})
	gg, ok := next.(guard)
	if !ok {
		t.Fatalf("expected guard, got %T", next)
	}
	inner, ok := gg.inner.(model)
	if !ok {
		t.Fatalf("expected the converter model inside, got %T", gg.inner)
	}
	if inner.input.Value() != "3409ee9" {
		t.Fatalf("expected keys to reach the model, got %q", inner.input.Value())
	}
	if !strings.Contains(gg.View(), "03409ee9") {
		t.Fatalf("expected the view to render through the guard:\n%s", gg.View())
	}
}

func TestGuard_RecoversUpdatePanic(t *testing.T) {
	g := newGuard(explodingModel{}, nil)

	next, cmd := g.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("expected no command after a recovered panic")
	}
	gg, ok := next.(guard)
	if !ok {
		t.Fatalf("expected the guard to keep running, got %T", next)
	}
	if gg.View() != "still here" {
		t.Fatalf("expected the session to keep rendering, got %q", gg.View())
	}
}

func TestGuard_RecoversViewPanic(t *testing.T) {
	g := newGuard(explodingModel{onView: true}, nil)
	if got := g.View(); got != panicNotice {
		t.Fatalf("expected %q, got %q", panicNotice, got)
	}
}

func TestGuard_ResetsModelAfterPanic(t *testing.T) {
	m := pressRunes(t, newModel(Deps{}), "3409ee9")
	m = m.afterPanic()

	if m.input.Value() != "" {
		t.Fatalf("expected an empty line, got %q", m.input.Value())
	}
	if m.result != nil || m.convErr != nil {
		t.Fatalf("expected result and error cleared, got %+v / %v", m.result, m.convErr)
	}
	if m.toast != panicNotice {
		t.Fatalf("expected the notice toast, got %q", m.toast)
	}
	if !strings.Contains(m.View(), panicNotice) {
		t.Fatalf("expected the notice in the view:\n%s", m.View())
	}
}
