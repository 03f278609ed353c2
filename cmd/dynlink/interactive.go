package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/dynlink/loader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	symStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type lookup struct {
	symbol string
	addr   uintptr
	err    error
}

type interactiveModel struct {
	err     error
	lib     *loader.Library
	libPath string
	input   textinput.Model
	history []lookup
}

func newInteractiveModel(libPath string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "symbol name"
	ti.Prompt = "resolve: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		libPath: libPath,
		input:   ti,
	}
}

type openedMsg struct {
	err error
	lib *loader.Library
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.openLibrary
}

func (m *interactiveModel) openLibrary() tea.Msg {
	lib, err := openScope(m.libPath)
	if err != nil {
		return openedMsg{err: err}
	}
	return openedMsg{lib: lib}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.lib != nil {
				m.lib.Close()
			}
			return m, tea.Quit

		case "enter":
			symbol := strings.TrimSpace(m.input.Value())
			if symbol == "" || m.lib == nil {
				return m, nil
			}
			addr, err := m.lib.Resolve(symbol)
			m.history = append(m.history, lookup{symbol: symbol, addr: addr, err: err})
			m.input.SetValue("")
			return m, nil
		}

	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.lib = msg.lib
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}
	if m.lib == nil {
		return "Opening library..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Symbol Inspector"))
	b.WriteString(" ")
	b.WriteString(m.lib.Name())
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// Most recent lookups first, capped to keep the view stable.
	const maxShown = 12
	start := len(m.history) - maxShown
	if start < 0 {
		start = 0
	}
	for i := len(m.history) - 1; i >= start; i-- {
		l := m.history[i]
		if l.err != nil {
			b.WriteString(fmt.Sprintf("%s  %s\n", symStyle.Render(l.symbol), errorStyle.Render(l.err.Error())))
		} else {
			b.WriteString(fmt.Sprintf("%s  %s\n", symStyle.Render(l.symbol), addrStyle.Render(fmt.Sprintf("%#x", l.addr))))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter resolve • esc quit"))

	return b.String()
}

func runInteractive(libPath string) error {
	p := tea.NewProgram(newInteractiveModel(libPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
