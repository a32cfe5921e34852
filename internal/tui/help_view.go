package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type HelpView struct {
	width  int
	height int
}

func NewHelpView() HelpView {
	return HelpView{}
}

func (h HelpView) Init() tea.Cmd {
	return nil
}

func (h HelpView) Update(msg tea.Msg) (HelpView, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = m.Width
		h.height = m.Height
		return h, nil

	case tea.KeyMsg:
		switch m.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return helpCancelledMsg{} }
		}
	}

	return h, nil
}

func (h HelpView) View() string {
	if h.width == 0 || h.height == 0 {
		return ""
	}

	helpText := `Keys:
	a      - Add task
	e      - Edit selected task
	t      - Toggle completed
	d      - Delete selected task
	/      - Search tasks
	s      - Cycle sort order
	f      - Cycle status filter
	p      - Cycle priority filter
	c      - Set category filter
	x / X  - Export CSV / text
	S      - Statistics
	?      - This help
	q      - Quit

	Tips:
	• Search matches title, description and category
	• Sorting and filtering never reorder the saved file
	• Esc clears an active search`

	instructions := "\nPress Esc to close"
	content := helpText + lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions)

	innerBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6")).
		Align(lipgloss.Center)

	borderedContent := innerBorder.Render(content)

	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4")).
		Align(lipgloss.Center)

	return outerStyle.Render(borderedContent)
}
