package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/dynstr/internal/ops"
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
	"github.com/msto63/dynstr/pkg/core/version"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// EntryKind classifies history entries
type EntryKind int

const (
	EntryCommand EntryKind = iota
	EntryResult
	EntryValue
	EntryError
	EntrySystem
)

// Entry is one line of session history
type Entry struct {
	Kind EntryKind
	Text string
	Err  error
}

// Options configures a REPL session
type Options struct {
	Registry      *ops.Registry
	Initial       string
	History       int
	StatusTimeout time.Duration
	Logger        *log.Logger
}

// Model is the REPL model
type Model struct {
	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	registry *ops.Registry
	logger   *log.Logger
	value    dynstr.String

	entries       []Entry
	historyLimit  int
	commands      []string
	commandCursor int

	status        string
	statusSeq     int
	statusTimeout time.Duration
}

type clearStatusMsg struct {
	seq int
}

// NewModel creates a REPL model holding opts.Initial as the working value
func NewModel(opts Options) (Model, error) {
	if opts.Registry == nil {
		opts.Registry = ops.Default(opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.History <= 0 {
		opts.History = 200
	}

	value, err := dynstr.FromString(opts.Initial)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "operation args... (:help for commands)"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 76
	ti.Focus()

	m := Model{
		input:         ti,
		registry:      opts.Registry,
		logger:        opts.Logger.WithField("component", "repl"),
		value:         value,
		historyLimit:  opts.History,
		statusTimeout: opts.StatusTimeout,
	}
	m.addEntry(EntrySystem, "dynstr "+version.REPL+", type :help for commands", nil)
	m.addEntry(EntryValue, value.DebugString(), nil)
	return m, nil
}

// Value returns the working value
func (m Model) Value() dynstr.String { return m.value }

// Entries returns the session history
func (m Model) Entries() []Entry { return m.entries }

// Status returns the status line text
func (m Model) Status() string { return m.status }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			cmd = m.Execute(line)
			m.updateContent()
			return m, cmd

		case "up":
			if m.commandCursor > 0 {
				m.commandCursor--
				m.input.SetValue(m.commands[m.commandCursor])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.commandCursor < len(m.commands)-1 {
				m.commandCursor++
				m.input.SetValue(m.commands[m.commandCursor])
				m.input.CursorEnd()
			} else {
				m.commandCursor = len(m.commands)
				m.input.Reset()
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-7)
			m.viewport.YPosition = 2
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 7
		}
		m.input.Width = msg.Width - 6
		m.updateContent()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Execute runs one input line against the working value
func (m *Model) Execute(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	m.commands = append(m.commands, line)
	m.commandCursor = len(m.commands)
	m.addEntry(EntryCommand, line, nil)

	if strings.HasPrefix(line, ":") {
		return m.meta(line)
	}

	step, err := ops.ParseLine(line)
	if err != nil {
		return m.fail(err)
	}
	out, err := m.registry.Apply(&m.value, step.Name, step.Args)
	if out != "" {
		m.addEntry(EntryResult, out, nil)
	}
	if err != nil {
		return m.fail(err)
	}
	m.addEntry(EntryValue, m.value.DebugString(), nil)
	return m.setStatus("ok: " + step.Name)
}

func (m *Model) meta(line string) tea.Cmd {
	name, rest, _ := strings.Cut(line, " ")
	switch name {
	case ":quit", ":q":
		return tea.Quit

	case ":new":
		value, err := dynstr.FromString(rest)
		if err != nil {
			return m.fail(err)
		}
		m.value = value
		m.addEntry(EntryValue, m.value.DebugString(), nil)
		return m.setStatus("new value")

	case ":reset":
		m.value.Destroy()
		m.addEntry(EntryValue, m.value.DebugString(), nil)
		return m.setStatus("reset")

	case ":help", ":h":
		m.addEntry(EntrySystem, ":new <text>  :reset  :help  :quit", nil)
		for _, op := range m.registry.List() {
			m.addEntry(EntrySystem, fmt.Sprintf("%-36s %s", op.Synopsis(), op.Description), nil)
		}
		return nil
	}

	return m.fail(mdwerror.New("unknown meta command").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("repl").
		WithDetail("command", name))
}

func (m *Model) fail(err error) tea.Cmd {
	m.addEntry(EntryError, err.Error(), err)
	m.logger.LogError(err)
	return m.setStatus(mdwerror.GetCode(err).String())
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	if m.statusTimeout <= 0 {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) addEntry(kind EntryKind, text string, err error) {
	m.entries = append(m.entries, Entry{Kind: kind, Text: text, Err: err})
	if over := len(m.entries) - m.historyLimit; over > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render("dynstr repl"))
	s.WriteString(" ")
	s.WriteString(SubtitleStyle.Render("v" + version.REPL))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(InputStyle.Width(max(10, m.width-2)).Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m *Model) renderFooter() string {
	left := RenderDebug(m.value)
	right := m.status
	if right == "" {
		right = "Enter: run • ↑/↓: history • Ctrl+L: clear • Esc: quit"
	}
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right),
	)
}

func (m *Model) renderEntry(e Entry) string {
	switch e.Kind {
	case EntryCommand:
		return CommandStyle.Render("> ") + e.Text
	case EntryResult:
		return ResultStyle.Render("= " + e.Text)
	case EntryError:
		return RenderError(e.Err)
	case EntrySystem:
		return SystemMessageStyle.Render(e.Text)
	}
	return MetaStyle.Render(e.Text)
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(m.renderEntry(e))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Run starts an interactive session on the terminal
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
