package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brianjo/watchdialtools/pkg/movement"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// MovementListModel is the bubbletea model for interactive movement selection.
type MovementListModel struct {
	Presets  []movement.Preset
	Cursor   int
	Selected *movement.Preset
	Height   int
	Offset   int
}

// NewMovementListModel creates a new movement list model.
func NewMovementListModel(presets []movement.Preset) MovementListModel {
	return MovementListModel{
		Presets: presets,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m MovementListModel) Init() tea.Cmd {
	return nil
}

func (m MovementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			p := m.Presets[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m MovementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Movement"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Presets) {
		end = len(m.Presets)
	}

	for i := m.Offset; i < end; i++ {
		p := m.Presets[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := fmt.Sprintf("%s%-12s %-24s %s", cursor, p.Name, p.DisplayName,
			listDimStyle.Render(fmt.Sprintf("%.1fmm", p.DialDiameterMM)))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// runMovementPicker runs the interactive movement picker and prints the
// datum sheet for the selection.
func runMovementPicker(reg *movement.Registry) error {
	presets := reg.All()
	if len(presets) == 0 {
		printError("No movement presets available")
		return nil
	}
	model := NewMovementListModel(presets)
	prog := tea.NewProgram(model)

	final, err := prog.Run()
	if err != nil {
		return err
	}

	m, ok := final.(MovementListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	printMovementDetail(*m.Selected)
	return nil
}
