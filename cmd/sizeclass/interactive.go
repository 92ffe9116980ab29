package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	protolayout "github.com/wippyai/proto-layout"
	"github.com/wippyai/proto-layout/field"
	"github.com/wippyai/proto-layout/sizeclass"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type kindEntry struct {
	vocab      string
	name       string
	narrowLog2 int
	wideLog2   int
}

type modelState int

const (
	stateBrowse modelState = iota
	stateCapacity
)

type interactiveModel struct {
	err      error
	result   string
	entries  []kindEntry
	capInput textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel() (*interactiveModel, error) {
	narrow := sizeclass.New(protolayout.Addr32)
	wide := sizeclass.New(protolayout.Addr64)

	var entries []kindEntry
	for k := field.ScalarBool; k <= field.ScalarBytes; k++ {
		n, err := narrow.ScalarSizeLog2(k)
		if err != nil {
			return nil, err
		}
		w, err := wide.ScalarSizeLog2(k)
		if err != nil {
			return nil, err
		}
		entries = append(entries, kindEntry{"scalar", k.String(), n, w})
	}
	for k := field.WireDouble; k <= field.WireSInt64; k++ {
		n, err := narrow.WireSizeLog2(k)
		if err != nil {
			return nil, err
		}
		w, err := wide.WireSizeLog2(k)
		if err != nil {
			return nil, err
		}
		entries = append(entries, kindEntry{"wire", k.String(), n, w})
	}

	ti := textinput.New()
	ti.Placeholder = "capacity"
	ti.Prompt = "capacity: "
	ti.Width = 20

	return &interactiveModel{entries: entries, capInput: ti}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "c":
			if m.state == stateBrowse {
				m.state = stateCapacity
				m.result = ""
				m.err = nil
				m.capInput.SetValue("")
				m.capInput.Focus()
				return m, textinput.Blink
			}

		case "enter":
			if m.state == stateCapacity {
				m.computeCapacity()
			}

		case "esc":
			if m.state == stateCapacity {
				m.state = stateBrowse
				m.capInput.Blur()
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateCapacity {
		var cmd tea.Cmd
		m.capInput, cmd = m.capInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) computeCapacity() {
	m.result = ""
	m.err = nil

	n, err := strconv.Atoi(strings.TrimSpace(m.capInput.Value()))
	if err != nil {
		m.err = fmt.Errorf("parse capacity: %w", err)
		return
	}
	if n < 0 || n > sizeclass.MaxCeilingInput {
		m.err = fmt.Errorf("capacity %d outside supported range [0, %d]", n, sizeclass.MaxCeilingInput)
		return
	}

	m.result = fmt.Sprintf("log2 %d, size %d",
		sizeclass.CeilingLog2(n), sizeclass.CeilingPowerOfTwoSize(n))
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Size Class Browser"))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		for i, e := range m.entries {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatEntry(e)))
			} else {
				b.WriteString(cursor + m.formatEntry(e))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		e := m.entries[m.selected]
		b.WriteString(fmt.Sprintf("%s %s: %d bytes on 32-bit, %d bytes on 64-bit\n",
			e.vocab, kindStyle.Render(e.name), 1<<e.narrowLog2, 1<<e.wideLog2))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • c capacity • q quit"))

	case stateCapacity:
		b.WriteString("Round a capacity up to a power of two:\n\n")
		b.WriteString(m.capInput.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		} else if m.result != "" {
			b.WriteString(resultStyle.Render(m.result))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter compute • esc back"))
	}

	return b.String()
}

func (m *interactiveModel) formatEntry(e kindEntry) string {
	name := kindStyle.Render(fmt.Sprintf("%-10s", e.name))
	return fmt.Sprintf("%-6s %s %s", e.vocab, name,
		classStyle.Render(fmt.Sprintf("class %d/%d", e.narrowLog2, e.wideLog2)))
}

func runInteractive() error {
	m, err := newInteractiveModel()
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
