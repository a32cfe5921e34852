package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/services"
)

// taskItem adapts a task for the list. position is the task's place in
// storage order, which stays valid no matter how the view is filtered or
// sorted.
type taskItem struct {
	task     *entities.Task
	position int
}

func (i taskItem) Title() string {
	return fmt.Sprintf("%s %s %s", i.task.StatusIcon(), i.task.Priority.Icon(), i.task.Title)
}

func (i taskItem) Description() string {
	parts := []string{string(i.task.Priority), i.task.Category}
	if i.task.DueDate != "" {
		part := "due " + i.task.DueDate
		if due, err := time.Parse(entities.DateLayout, i.task.DueDate); err == nil {
			part += " (" + humanize.Time(due) + ")"
		}
		parts = append(parts, part)
	}
	if i.task.Description != "" {
		parts = append(parts, i.task.Description)
	}
	return strings.Join(parts, " · ")
}

func (i taskItem) FilterValue() string {
	return i.task.Title + " " + i.task.Description + " " + i.task.Category
}

type TaskView struct {
	taskService services.TaskService

	list          list.Model
	categoryInput textinput.Model

	filter    services.Filter
	sortKey   services.SortKey
	prompting bool
	total     int
	status    string
	err       error

	width  int
	height int
}

func NewTaskView(taskService services.TaskService) TaskView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("6")).Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("7"))
	delegate.SetHeight(2)

	l := list.New([]list.Item{}, delegate, 100, 10)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowPagination(true)
	l.Filter = substringFilter

	categoryInput := textinput.New()
	categoryInput.Placeholder = "category (blank for all)"
	categoryInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	categoryInput.Width = 30

	v := TaskView{
		taskService:   taskService,
		list:          l,
		categoryInput: categoryInput,
	}
	v.reload()
	return v
}

func (v TaskView) Init() tea.Cmd {
	return nil
}

func (v TaskView) Update(msg tea.Msg) (TaskView, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = m.Width
		v.height = m.Height
		v.list.SetSize(m.Width-6, m.Height-10)
		return v, nil

	case taskSavedMsg:
		v.err = nil
		v.status = ""
		v.reload()
		return v, nil

	case exportedMsg:
		v.err = nil
		v.status = "Exported to " + m.path
		return v, nil

	case errMsg:
		v.err = m
		return v, nil

	case tea.KeyMsg:
		if v.prompting {
			switch m.String() {
			case "enter":
				v.prompting = false
				v.filter.Category = strings.TrimSpace(v.categoryInput.Value())
				v.categoryInput.Blur()
				v.reload()
				return v, nil
			case "esc":
				v.prompting = false
				v.categoryInput.Blur()
				return v, nil
			default:
				var cmd tea.Cmd
				v.categoryInput, cmd = v.categoryInput.Update(msg)
				return v, cmd
			}
		}

		// While the search input is open, keys belong to the list.
		if v.list.FilterState() == list.Filtering {
			break
		}

		switch m.String() {
		case "a":
			return v, func() tea.Msg { return startAddTaskMsg{} }
		case "e":
			if item, ok := v.list.SelectedItem().(taskItem); ok {
				return v, func() tea.Msg { return startEditTaskMsg{task: item.task, position: item.position} }
			}
			return v, nil
		case "t":
			if item, ok := v.list.SelectedItem().(taskItem); ok {
				if _, err := v.taskService.ToggleTask(context.Background(), item.position); err != nil {
					v.err = err
				} else {
					v.err = nil
					v.status = ""
					v.reload()
				}
			}
			return v, nil
		case "d":
			if item, ok := v.list.SelectedItem().(taskItem); ok {
				if _, err := v.taskService.DeleteTask(context.Background(), item.position); err != nil {
					v.err = err
				} else {
					v.err = nil
					v.status = ""
					v.reload()
				}
			}
			return v, nil
		case "s":
			v.sortKey = services.NextSortKey(v.sortKey)
			v.reload()
			return v, nil
		case "f":
			v.filter.Status = nextStatusFilter(v.filter.Status)
			v.reload()
			return v, nil
		case "p":
			v.filter.Priority = nextPriorityFilter(v.filter.Priority)
			v.reload()
			return v, nil
		case "c":
			v.prompting = true
			v.categoryInput.SetValue(v.filter.Category)
			v.categoryInput.Focus()
			return v, textinput.Blink
		case "x":
			return v, func() tea.Msg { return startExportMsg{format: "csv"} }
		case "X":
			return v, func() tea.Msg { return startExportMsg{format: "text"} }
		case "S":
			return v, func() tea.Msg { return startStatsMsg{} }
		case "?":
			return v, func() tea.Msg { return startHelpMsg{} }
		case "q":
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v TaskView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}

	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4")).
		Width(v.width - 2).
		Height(v.height - 2)

	innerBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6")).
		Width(v.list.Width()).
		Height(v.list.Height())

	var sb strings.Builder
	sb.WriteString(innerBorder.Render(v.list.View()))
	sb.WriteString("\n")

	if item, ok := v.list.SelectedItem().(taskItem); ok {
		sb.WriteString(v.detailLine(item))
		sb.WriteString("\n")
	}

	if v.prompting {
		sb.WriteString("Category filter: " + v.categoryInput.View())
	} else {
		instructions := "a add · e edit · t toggle · d delete · / search · s sort · f/p/c filter · x/X export · S stats · ? help · q quit"
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions))
	}

	if v.status != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("\n" + v.status))
	}
	if v.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("\nError: " + v.err.Error()))
	}

	return outerStyle.Render(sb.String())
}

// reload rebuilds the visible items from the service. Titles are unique, so
// the title index recovers each task's storage position after filtering and
// sorting have rearranged the view.
func (v *TaskView) reload() {
	tasks := v.taskService.Tasks()
	index := services.NewTitleIndex(tasks)
	v.total = len(tasks)

	visible := services.SortTasks(v.taskService.Filter(v.filter), v.sortKey)
	items := make([]list.Item, 0, len(visible))
	for _, task := range visible {
		position, ok := index[strings.ToLower(task.Title)]
		if !ok {
			continue
		}
		items = append(items, taskItem{task: task, position: position})
	}
	v.list.SetItems(items)
	v.list.Title = v.listTitle()
}

func (v *TaskView) listTitle() string {
	title := "Tasks"
	switch v.filter.Status {
	case services.StatusPending:
		title += " · pending"
	case services.StatusCompleted:
		title += " · completed"
	}
	if v.filter.Priority != "" {
		title += " · " + string(v.filter.Priority)
	}
	if v.filter.Category != "" {
		title += " · " + v.filter.Category
	}
	if v.sortKey != "" {
		title += " · by " + string(v.sortKey)
	}
	return title
}

func (v TaskView) detailLine(item taskItem) string {
	title := item.task.Title
	if item.task.Color != "" {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(item.task.Color)).Render(title)
	}
	return fmt.Sprintf("Task %d of %d: %s", item.position+1, v.total, title)
}

func nextStatusFilter(s services.StatusFilter) services.StatusFilter {
	switch s {
	case services.StatusPending:
		return services.StatusCompleted
	case services.StatusCompleted:
		return services.StatusAll
	default:
		return services.StatusPending
	}
}

func nextPriorityFilter(p entities.Priority) entities.Priority {
	switch p {
	case entities.PriorityHigh:
		return entities.PriorityMedium
	case entities.PriorityMedium:
		return entities.PriorityLow
	case entities.PriorityLow:
		return ""
	default:
		return entities.PriorityHigh
	}
}

// substringFilter replaces the list's fuzzy matcher with the case-insensitive
// substring semantics search uses everywhere else in the tool.
func substringFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var ranks []list.Rank
	for i, target := range targets {
		lower := strings.ToLower(target)
		start := strings.Index(lower, term)
		if start < 0 {
			continue
		}

		runeStart := utf8.RuneCountInString(lower[:start])
		matched := make([]int, utf8.RuneCountInString(term))
		for j := range matched {
			matched[j] = runeStart + j
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}
