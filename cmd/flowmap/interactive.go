package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func styleTitle(s string) string {
	if noColor {
		return s
	}
	return titleStyle.Render(s)
}

func styleFlags(s string) string {
	if noColor {
		return s
	}
	return flagStyle.Render(s)
}

type modelState int

const (
	stateSelectMethod modelState = iota
	stateViewMethod
)

type methodEntry struct {
	body *bytecode.MethodBody
	file string
	res  engine.Result
}

type interactiveModel struct {
	err      error
	files    []string
	cfg      Config
	methods  []methodEntry
	labels   table.Model
	selected int
	state    modelState
}

type loadedMsg struct {
	err     error
	methods []methodEntry
}

func newInteractiveModel(files []string, cfg Config) *interactiveModel {
	return &interactiveModel{
		files: files,
		cfg:   cfg,
		state: stateSelectMethod,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	bodies, err := assembleFiles(m.files)
	if err != nil {
		return loadedMsg{err: err}
	}

	results := engine.AnalyzeAll(bodies, m.cfg.EngineOptions(), m.cfg.Workers)
	methods := make([]methodEntry, len(bodies))
	for i := range bodies {
		methods[i] = methodEntry{body: bodies[i], file: m.files[i], res: results[i]}
	}
	return loadedMsg{methods: methods}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectMethod && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMethod && m.selected < len(m.methods)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectMethod && len(m.methods) > 0 {
				if m.methods[m.selected].res.Err == nil {
					m.labels = m.labelTable(m.methods[m.selected])
					m.state = stateViewMethod
				}
			}

		case "esc":
			if m.state == stateViewMethod {
				m.state = stateSelectMethod
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.methods = msg.methods
	}

	if m.state == stateViewMethod {
		var cmd tea.Cmd
		m.labels, cmd = m.labels.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) labelTable(entry methodEntry) table.Model {
	columns := []table.Column{
		{Title: "Label", Width: 14},
		{Title: "Target", Width: 8},
		{Title: "Multi", Width: 8},
		{Title: "Successor", Width: 10},
		{Title: "Call line", Width: 10},
	}

	var rows []table.Row
	for _, l := range sortedLabels(entry.body) {
		info := entry.res.Flow.Get(l)
		callLine := ""
		if line, ok := info.InvocationLine(); ok {
			callLine = fmt.Sprintf("%d", line)
		}
		rows = append(rows, table.Row{
			l.String(),
			yesNo(info.Target()),
			yesNo(info.MultiTarget()),
			yesNo(info.Successor()),
			callLine,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = selectedStyle
	t.SetStyles(styles)
	return t
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if len(m.methods) == 0 {
		return "Analyzing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("flowmap"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectMethod:
		b.WriteString("Select a method:\n\n")
		for i, entry := range m.methods {
			line := m.formatMethod(entry)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter view • q quit"))

	case stateViewMethod:
		entry := m.methods[m.selected]
		b.WriteString(methodStyle.Render(entry.res.Method))
		b.WriteString(fmt.Sprintf("  %d probes\n\n", len(entry.res.Probes)))
		b.WriteString(m.labels.View())
		b.WriteString("\n\n")
		for _, p := range entry.res.Probes {
			where := ""
			if p.Label != nil {
				where = " -> " + p.Label.String()
			}
			b.WriteString(fmt.Sprintf("  #%d %s at insn %d%s\n", p.ID, p.Kind, p.InsnIndex, where))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatMethod(entry methodEntry) string {
	if entry.res.Err != nil {
		return entry.res.Method + " " + errorStyle.Render(entry.res.Err.Error())
	}
	return methodStyle.Render(entry.res.Method) +
		fmt.Sprintf(" (%d labels, %d probes)", entry.res.Flow.Len(), len(entry.res.Probes))
}

func runInteractive(files []string, cfg Config) error {
	p := tea.NewProgram(newInteractiveModel(files, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
