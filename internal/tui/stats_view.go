package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/services"
)

type StatsView struct {
	taskService services.TaskService
	stats       services.Statistics
	width       int
	height      int
}

func NewStatsView(taskService services.TaskService) StatsView {
	return StatsView{taskService: taskService}
}

func (s StatsView) Init() tea.Cmd {
	return s.fetchStatsCmd()
}

func (s StatsView) Update(msg tea.Msg) (StatsView, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = m.Width
		s.height = m.Height
		return s, nil

	case statsLoadedMsg:
		s.stats = m.stats
		return s, nil

	case tea.KeyMsg:
		switch m.String() {
		case "esc", "q", "S":
			return s, func() tea.Msg { return statsCancelledMsg{} }
		}
	}

	return s, nil
}

func (s StatsView) View() string {
	if s.width == 0 || s.height == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Task Statistics"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Total:     %s\n", humanize.Comma(int64(s.stats.Total))))
	sb.WriteString(fmt.Sprintf("Completed: %s (%.1f%%)\n", humanize.Comma(int64(s.stats.Completed)), s.stats.CompletedPercent()))
	sb.WriteString(fmt.Sprintf("Pending:   %s (%.1f%%)\n", humanize.Comma(int64(s.stats.Pending)), s.stats.PendingPercent()))

	sb.WriteString("\nBy priority:\n")
	for _, p := range []entities.Priority{entities.PriorityHigh, entities.PriorityMedium, entities.PriorityLow} {
		sb.WriteString(fmt.Sprintf("%s %-7s %s\n", p.Icon(), string(p), humanize.Comma(int64(s.stats.ByPriority[p]))))
	}

	if len(s.stats.ByCategory) > 0 {
		sb.WriteString("\nBy category:\n")
		categories := make([]string, 0, len(s.stats.ByCategory))
		for category := range s.stats.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			sb.WriteString(fmt.Sprintf("%-12s %s\n", category, humanize.Comma(int64(s.stats.ByCategory[category]))))
		}
	}

	instructions := "\nPress Esc to close"
	content := sb.String() + lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions)

	innerBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(1)

	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4")).
		Width(s.width - 2).
		Height(s.height - 2).
		Align(lipgloss.Center)

	return outerStyle.Render(innerBorder.Render(content))
}

// fetchStatsCmd computes the snapshot here, on the update loop. The returned
// command only delivers it.
func (s StatsView) fetchStatsCmd() tea.Cmd {
	stats := s.taskService.Statistics()
	return func() tea.Msg {
		return statsLoadedMsg{stats: stats}
	}
}
