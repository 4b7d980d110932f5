package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/adventure/engine"
	"github.com/nathoo/adventure/types"
)

const recallLimit = 100

// rawLine stores an unstyled output line with its classification,
// so it can be re-wrapped and re-styled when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool
	isSystem bool
}

// Model is the Bubble Tea model for the Adventure TUI.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	recall   *Recall

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string // echoed player input (empty for the opening text)
	lines    []string
	isSystem bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine: eng,
		input:  ti,
		recall: NewRecall(recallLimit),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the opening text.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		result := m.engine.Start()
		lines := append([]string{m.engine.World.Title(), ""}, result.Output...)
		return gameOutputMsg{lines: lines}
	}
}

// Update handles key presses, window resizes and game output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // status bar + input line
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

		case "up":
			if prev, ok := m.recall.Older(m.input.Value()); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.recall.Newer(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.recall.Add(input)

	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(gameOutputMsg{
				input: input, lines: []string{"Nothing to repeat."}, isSystem: true,
			})
			return m, nil
		}
		input = m.lastCmd
	} else if !strings.HasPrefix(input, "/") {
		m.lastCmd = input
	}

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	output := result.Output
	if m.trace {
		output = append(output, formatTrace(result)...)
	}
	m = m.appendOutput(gameOutputMsg{input: input, lines: output})
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}
	// Blank line between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	styled := make([]string, 0, len(m.rawLines))
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

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindItem:
		return styledItem(line)
	case kindHelp:
		return styleHelp.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleRoomDesc.Render(line)
	}
}

// View renders the layout: viewport, status bar, input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdHelp() []string {
	out := []string{
		"System:",
		"  /quit   Exit game",
		"  /help   Show this help",
		"  /state  Debug: dump current state",
		"  /trace  Toggle event trace output",
		"",
		"Game commands:",
	}
	for _, line := range strings.Split(m.engine.World.Help(), "\n") {
		out = append(out, "  "+line)
	}
	return append(out,
		"  AGAIN (G): repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	)
}

func (m *Model) cmdState() []string {
	w := m.engine.World
	cur := w.Current()
	names := make([]string, 0)
	for _, it := range w.Inventory() {
		names = append(names, it.Name)
	}
	back := "none"
	if prev, ok := m.engine.History.Peek(); ok {
		back = prev.Name
	}
	return []string{
		fmt.Sprintf("Turn: %d", m.engine.TurnCount),
		fmt.Sprintf("Room: %d (%s)", cur.ID, cur.Name),
		fmt.Sprintf("Exits: %s", strings.Join(cur.Directions(), ", ")),
		fmt.Sprintf("Inventory: %v", names),
		fmt.Sprintf("History: %d (back: %s)", m.engine.History.Len(), back),
	}
}

func formatTrace(result types.Result) []string {
	if len(result.Events) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(result.Events))}
	for _, e := range result.Events {
		lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
	return lines
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled; those
// keys drive input recall.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
