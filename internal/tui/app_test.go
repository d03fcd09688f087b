package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// --- helpers ---

func press(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model after update, got %T", next)
	}
	return mm
}

func pressRunes(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

// --- update ---

func TestUpdate_TypingConvertsLive(t *testing.T) {
	m := pressRunes(t, newModel(Deps{}), "3")
	if m.convErr != nil {
		t.Fatalf("unexpected error after one digit: %v", m.convErr)
	}
	if m.result == nil || m.result.Hex != "00000003" {
		t.Fatalf("expected partial line to convert, got %+v", m.result)
	}

	m = pressRunes(t, m, "409ee9")
	if m.result == nil || m.result.Hex != "03409ee9" {
		t.Fatalf("expected full word, got %+v", m.result)
	}
	if m.result.Facility != 160 || m.result.Card != 20340 {
		t.Fatalf("expected fields (160, 20340), got (%d, %d)", m.result.Facility, m.result.Card)
	}
}

func TestUpdate_TabCyclesModes(t *testing.T) {
	steps := []struct {
		key  tea.KeyMsg
		want inputMode
	}{
		{key(tea.KeyTab), modeDecimal},
		{key(tea.KeyTab), modeFacilityCard},
		{key(tea.KeyTab), modeHex},
		{key(tea.KeyShiftTab), modeFacilityCard},
		{key(tea.KeyShiftTab), modeDecimal},
	}

	m := newModel(Deps{})
	for i, s := range steps {
		m = press(t, m, s.key)
		if m.mode != s.want {
			t.Fatalf("step %d: expected mode %s, got %s", i, s.want, m.mode)
		}
		if m.input.Placeholder != s.want.placeholder() {
			t.Fatalf("step %d: expected placeholder %q, got %q", i, s.want.placeholder(), m.input.Placeholder)
		}
	}
}

// 54566633 reads as an out-of-range hex word but as a valid decimal
// one; switching modes must reconvert the line in place.
func TestUpdate_ModeChangeReconverts(t *testing.T) {
	m := pressRunes(t, newModel(Deps{}), "54566633")
	if m.convErr == nil {
		t.Fatal("expected the hex reading to be out of range")
	}

	m = press(t, m, key(tea.KeyTab))
	if m.convErr != nil {
		t.Fatalf("expected the decimal reading to convert, got %v", m.convErr)
	}
	if m.result == nil || m.result.Hex != "03409ee9" {
		t.Fatalf("expected word 03409ee9, got %+v", m.result)
	}
}

func TestUpdate_StrictToggleRerunsConversion(t *testing.T) {
	m := pressRunes(t, newModel(Deps{}), "3409ee8")
	if m.result == nil || m.result.ParityOK {
		t.Fatalf("expected lax mode to surface the corrupted word, got %+v", m.result)
	}

	m = press(t, m, key(tea.KeyCtrlS))
	if !m.opts.Strict {
		t.Fatal("expected ctrl+s to enable strict parity")
	}
	if m.convErr == nil {
		t.Fatal("expected strict mode to reject the corrupted word")
	}

	m = press(t, m, key(tea.KeyCtrlS))
	if m.opts.Strict {
		t.Fatal("expected ctrl+s to toggle strict parity back off")
	}
	if m.convErr != nil || m.result == nil {
		t.Fatalf("expected the word back after relaxing, got err=%v result=%+v", m.convErr, m.result)
	}
}

func TestUpdate_BinaryToggleRerunsConversion(t *testing.T) {
	m := pressRunes(t, newModel(Deps{}), "3409ee9")
	if m.result == nil || m.result.Binary != "" {
		t.Fatalf("expected binary off by default, got %+v", m.result)
	}

	m = press(t, m, key(tea.KeyCtrlB))
	if !m.opts.WithBinary {
		t.Fatal("expected ctrl+b to enable the binary rendering")
	}
	if m.result == nil || m.result.Binary != "11010000001001111011101001" {
		t.Fatalf("expected binary rendering after toggle, got %+v", m.result)
	}
}

// ctrl+u belongs to the uppercase toggle, not to the text input's
// default delete-to-start binding.
func TestUpdate_UppercaseToggleKeepsLine(t *testing.T) {
	m := pressRunes(t, newModel(Deps{}), "3409ee9")
	m = press(t, m, key(tea.KeyCtrlU))

	if !m.upper {
		t.Fatal("expected ctrl+u to enable uppercase")
	}
	if got := m.input.Value(); got != "3409ee9" {
		t.Fatalf("expected the line to survive ctrl+u, got %q", got)
	}
	if !strings.Contains(m.View(), "03409EE9") {
		t.Fatalf("expected uppercase hex in the view:\n%s", m.View())
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := newModel(Deps{}).Update(key(k))
		if cmd == nil {
			t.Fatalf("expected %v to quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %v, got %T", k, cmd())
		}
	}
}

func TestUpdate_WindowSizeBoundsView(t *testing.T) {
	m := press(t, newModel(Deps{}), tea.WindowSizeMsg{Width: 72, Height: 20})
	if m.width != 72 {
		t.Fatalf("expected width 72, got %d", m.width)
	}
	if !strings.Contains(m.View(), "badgewire") {
		t.Fatal("expected the view to render under a width bound")
	}
}

func TestUpdate_KeyClearsToast(t *testing.T) {
	m := newModel(Deps{})
	m.toast = panicNotice
	if !strings.Contains(m.View(), panicNotice) {
		t.Fatal("expected the toast to render")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if m.toast != "" {
		t.Fatalf("expected a keypress to clear the toast, got %q", m.toast)
	}
}

// --- view ---

func TestView_States(t *testing.T) {
	m := newModel(Deps{})
	out := m.View()
	for _, want := range []string{"badgewire", "hex", "type a badge word"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in the empty view:\n%s", want, out)
		}
	}

	bad := pressRunes(t, newModel(Deps{}), "zz")
	if !strings.Contains(bad.View(), "Hex wants 1-8 hex digits") {
		t.Fatalf("expected the error card message:\n%s", bad.View())
	}

	good := pressRunes(t, newModel(Deps{}), "3409ee9")
	out = good.View()
	for _, want := range []string{"03409ee9", "54566633", "160", "20340", "parity ok"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in the result view:\n%s", want, out)
		}
	}
}
