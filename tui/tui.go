// Package tui provides a Bubble Tea terminal UI for the frog adventure.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/frogquest/cli"
	"github.com/nathoo/frogquest/engine"
	"github.com/nathoo/frogquest/engine/events"
	"github.com/nathoo/frogquest/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the frog adventure TUI.
type Model struct {
	ctx    context.Context
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)
	snap     snapshot

	width    int
	height   int
	ready    bool
	busy     bool // a step is running; input is ignored
	trace    bool
	quitting bool
	lastCmd  string
}

// stepDoneMsg carries the result of an engine step back into Update.
type stepDoneMsg struct {
	input  string // echoed player input (empty for the opening step)
	result types.Result
	snap   snapshot
}

// New creates a TUI model wired to the given engine. Notices are shown as
// system messages above the opening output.
func New(ctx context.Context, eng *engine.Engine, notices ...string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = styleInputPrompt

	m := Model{
		ctx:    ctx,
		engine: eng,
		input:  ti,
		snap:   takeSnapshot(eng),
		busy:   true,
	}
	for _, n := range notices {
		m.rawLines = append(m.rawLines, rawLine{text: n, isSystem: true})
	}
	return m
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, eng *engine.Engine, notices ...string) error {
	m := New(ctx, eng, notices...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init starts the session. Hatching may call the network, so it runs as a command.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.begin())
}

func (m Model) begin() tea.Cmd {
	eng, ctx := m.engine, m.ctx
	return func() tea.Msg {
		result := eng.Begin(ctx)
		return stepDoneMsg{result: result, snap: takeSnapshot(eng)}
	}
}

func (m Model) step(input string) tea.Cmd {
	eng, ctx := m.engine, m.ctx
	return func() tea.Msg {
		result := eng.Step(ctx, input)
		return stepDoneMsg{input: input, result: result, snap: takeSnapshot(eng)}
	}
}

// Update handles messages (key presses, window resize, step results).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 3 // status bar + prompt + input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "pgup", "pgdown", "up", "down":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case stepDoneMsg:
		m.busy = false
		m.snap = msg.snap
		lines := msg.result.Output
		if m.trace {
			lines = append(lines, events.FormatTrace(msg.result.Effects, msg.result.Events)...)
		}
		m = m.appendOutput(msg.input, lines, false)
		if msg.result.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	// Handle "again" / "g".
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(input, []string{"Nothing to repeat."}, true)
			return m, nil
		}
		input = m.lastCmd
	} else if !strings.HasPrefix(input, "/") {
		m.lastCmd = input
	}

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(input, output, true)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.busy = true
	return m, m.step(input)
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(input string, lines []string, isSystem bool) Model {
	if input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + input, isInput: true,
		})
	}

	for _, line := range lines {
		rl := rawLine{text: line, isSystem: isSystem}
		if !isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	if m.snap.mode == types.ModeIdle && !isSystem {
		for _, line := range engine.Menu() {
			m.rawLines = append(m.rawLines, rawLine{text: line, kind: kindMenu})
		}
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordwrap.String(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the full TUI layout: viewport + status bar + prompt + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	prompt := m.snap.prompt
	if m.busy {
		prompt = "..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + styleSystem.Render(prompt) + "\n" + m.input.View()
}

// handleMeta runs a slash command between steps. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	res := cli.Meta(m.engine, input)
	if res.ToggleTrace {
		m.trace = !m.trace
		res.Lines = append(res.Lines, cli.TraceNotice(m.trace))
	}
	m.snap = takeSnapshot(m.engine)
	return res.Lines, res.Quit
}

// viewportKeyMap returns a viewport keymap that scrolls with the arrow
// and page keys only, leaving letters free for the input line.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
