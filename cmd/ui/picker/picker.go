// Package picker renders a single-choice menu for CLI steps.
package picker

import (
	"fmt"

	"mkdev/cmd/steps"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(3)
	descriptionStyle  = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	cursor   int
	choices  []steps.Item
	header   string
	choice   string
	quitting bool
	aborted  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.choice = m.choices[m.cursor].Flag
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render(m.header) + "\n\n"

	for i, choice := range m.choices {
		if m.cursor == i {
			s += selectedItemStyle.Render("> "+choice.Title) + descriptionStyle.Render(" — "+choice.Desc) + "\n"
		} else {
			s += itemStyle.Render(choice.Title) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("↑/↓ to move, enter to select, q to quit") + "\n"
	return s
}

// ShowMenu runs a single-choice menu and returns the selected item's
// flag value.
func ShowMenu(choices []steps.Item, header string) (string, error) {
	p := tea.NewProgram(model{choices: choices, header: header})

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("menu failed: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.aborted || m.choice == "" {
		return "", fmt.Errorf("selection cancelled")
	}

	return m.choice, nil
}
