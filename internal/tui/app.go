// Package tui is the interactive badge word converter: one input line,
// live conversion on every keystroke, and toggles for the output
// options.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atrelio/badgewire/internal/convert"
)

type Deps struct {
	// Options and Uppercase seed the session toggles, usually from
	// badgewire.yaml.
	Options   convert.Options
	Uppercase bool

	Logger *slog.Logger
	Debug  bool
}

type model struct {
	theme Theme
	deps  Deps

	mode  inputMode
	input textinput.Model
	width int

	opts  convert.Options
	upper bool

	result  *convert.Result
	convErr error
	toast   string
}

func Run(deps Deps) error {
	if deps.Logger != nil {
		deps.Logger.Info("tui.start", "debug", deps.Debug)
	}
	m := newModel(deps)
	p := tea.NewProgram(newGuard(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = modeHex.placeholder()
	ti.CharLimit = 32
	ti.Width = 40
	ti.Focus()

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		mode:  modeHex,
		input: ti,
		opts:  deps.Options,
		upper: deps.Uppercase,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.toast = ""

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.mode = m.mode.next()
			m.input.Placeholder = m.mode.placeholder()
			m.refresh()
			return m, nil

		case "shift+tab":
			m.mode = m.mode.prev()
			m.input.Placeholder = m.mode.placeholder()
			m.refresh()
			return m, nil

		case "ctrl+s":
			m.opts.Strict = !m.opts.Strict
			m.refresh()
			return m, nil

		case "ctrl+b":
			m.opts.WithBinary = !m.opts.WithBinary
			m.refresh()
			return m, nil

		case "ctrl+u":
			m.upper = !m.upper
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh recomputes the conversion from the current line. An empty
// line clears both result and error.
func (m *model) refresh() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		m.result = nil
		m.convErr = nil
		return
	}

	res, err := convertLine(m.mode, line, m.opts)
	if err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Debug("tui.convert_failed", "mode", m.mode.String(), "err", err)
		}
		m.result = nil
		m.convErr = err
		return
	}
	m.result = &res
	m.convErr = nil
}

// afterPanic clears the session back to an empty prompt. The mode and
// toggles survive; the line, result, and error do not.
func (m model) afterPanic() model {
	m.input.Reset()
	m.result = nil
	m.convErr = nil
	m.toast = panicNotice
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	if m.width > 0 {
		wrap = wrap.MaxWidth(m.width)
	}

	header := m.theme.Title.Render("badgewire") + "\n" +
		m.theme.Subtitle.Render("Wiegand 26-bit badge word converter") + "\n"

	modeLine := m.theme.Help.Render("input form: ") + m.theme.Mode.Render(m.mode.String())

	var body string
	switch {
	case m.convErr != nil:
		body = m.theme.ErrorCard.Render(userMessage(m.convErr))
	case m.result != nil:
		body = m.theme.Card.Render(renderResult(m.theme, *m.result, m.upper))
	default:
		body = m.theme.Help.Render("type a badge word to convert")
	}

	out := header + "\n" + modeLine + "\n" + m.input.View() + "\n\n" + body + "\n\n"
	if m.toast != "" {
		out += m.theme.Alert.Render(m.toast) + "\n"
	}

	toggles := m.theme.Help.Render(fmt.Sprintf("strict=%s  binary=%s  upper=%s",
		onOff(m.opts.Strict), onOff(m.opts.WithBinary), onOff(m.upper)))
	help := m.theme.Help.Render("tab input form • ctrl+s strict • ctrl+b binary • ctrl+u upper • esc quit")

	return wrap.Render(out + toggles + "\n" + help)
}

func renderResult(t Theme, res convert.Result, upper bool) string {
	hexText := res.Hex
	if upper {
		hexText = strings.ToUpper(hexText)
	}

	lines := []string{
		fmt.Sprintf("hex      %s", hexText),
		fmt.Sprintf("decimal  %d", res.Decimal),
		fmt.Sprintf("facility %d", res.Facility),
		fmt.Sprintf("card     %d", res.Card),
	}
	if res.Binary != "" {
		lines = append(lines, fmt.Sprintf("binary   %s", res.Binary))
	}

	verdict := t.OK.Render("parity ok")
	if !res.ParityOK {
		verdict = t.Alert.Render("parity FAIL")
	}
	lines = append(lines, "", verdict)

	return strings.Join(lines, "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
