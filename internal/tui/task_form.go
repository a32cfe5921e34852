package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/services"
)

const (
	fieldTitle = iota
	fieldPriority
	fieldDueDate
	fieldCategory
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Priority", "Due date", "Category", "Description"}

type TaskForm struct {
	taskService services.TaskService

	inputs   [fieldCount]textinput.Model
	focused  int
	mode     string // "add" or "edit"
	position int
	original *entities.Task

	err    error
	width  int
	height int
}

func NewTaskForm(taskService services.TaskService) TaskForm {
	placeholders := [fieldCount]string{
		"What needs doing?",
		"low, medium or high (blank for medium)",
		"YYYY-MM-DD (blank for none)",
		entities.DefaultCategory,
		"Optional details",
	}

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
		input.Width = 50
		inputs[i] = input
	}

	return TaskForm{
		taskService: taskService,
		inputs:      inputs,
		mode:        "add",
	}
}

func (f *TaskForm) SetAdd() {
	f.mode = "add"
	f.original = nil
	f.position = 0
	f.err = nil
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(fieldTitle)
}

func (f *TaskForm) SetEdit(task *entities.Task, position int) {
	f.mode = "edit"
	f.original = task.Clone()
	f.position = position
	f.err = nil
	f.inputs[fieldTitle].SetValue(task.Title)
	f.inputs[fieldPriority].SetValue(string(task.Priority))
	f.inputs[fieldDueDate].SetValue(task.DueDate)
	f.inputs[fieldCategory].SetValue(task.Category)
	f.inputs[fieldDescription].SetValue(task.Description)
	f.setFocus(fieldTitle)
}

func (f *TaskForm) setFocus(index int) {
	f.focused = index
	for i := range f.inputs {
		if i == index {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f TaskForm) Update(msg tea.Msg) (TaskForm, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = m.Width
		f.height = m.Height
		for i := range f.inputs {
			f.inputs[i].Width = m.Width - 8
		}
		return f, nil

	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			return f, func() tea.Msg { return formCancelledMsg{} }
		case "tab", "down":
			f.setFocus((f.focused + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focused + fieldCount - 1) % fieldCount)
			return f, nil
		case "enter":
			return f.submit()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

func (f TaskForm) View() string {
	if f.width == 0 || f.height == 0 {
		return ""
	}

	focusedBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6"))

	unfocusedBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8"))

	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4")).
		Width(f.width - 2).
		Height(f.height - 2).
		Padding(1)

	title := "New Task"
	if f.mode == "edit" {
		title = "Edit Task"
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	sb.WriteString("\n\n")

	for i := range f.inputs {
		style := unfocusedBorder
		if i == f.focused {
			style = focusedBorder
		}
		sb.WriteString(fieldLabels[i] + ":\n")
		sb.WriteString(style.Width(f.width - 6).Render(f.inputs[i].View()))
		sb.WriteString("\n")
	}

	instructions := "Press Enter to save, Tab to switch fields, Esc to cancel"
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("\n" + instructions))

	if f.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("\nError: " + f.err.Error()))
	}

	return outerStyle.Render(sb.String())
}

// submit applies the form to the collection before returning. The returned
// command carries no work of its own; it only announces the save.
func (f TaskForm) submit() (TaskForm, tea.Cmd) {
	ctx := context.Background()
	title := f.inputs[fieldTitle].Value()
	priority := f.inputs[fieldPriority].Value()
	dueDate := f.inputs[fieldDueDate].Value()
	category := f.inputs[fieldCategory].Value()
	description := f.inputs[fieldDescription].Value()

	if f.mode == "add" {
		if _, err := f.taskService.AddTask(ctx, title, priority, dueDate, category, description); err != nil {
			f.err = err
			return f, nil
		}
		f.err = nil
		return f, func() tea.Msg { return taskSavedMsg{} }
	}

	// Edit submits one operation per changed field. Each change persists
	// on its own, so a later failure leaves earlier changes applied.
	if strings.TrimSpace(title) != f.original.Title {
		if err := f.taskService.UpdateTitle(ctx, f.position, title); err != nil {
			f.err = err
			return f, nil
		}
	}
	if p := strings.ToLower(strings.TrimSpace(priority)); p != string(f.original.Priority) {
		if err := f.taskService.UpdatePriority(ctx, f.position, priority); err != nil {
			f.err = err
			return f, nil
		}
	}
	if strings.TrimSpace(dueDate) != f.original.DueDate {
		if err := f.taskService.UpdateDueDate(ctx, f.position, dueDate); err != nil {
			f.err = err
			return f, nil
		}
	}
	if strings.TrimSpace(category) != f.original.Category {
		if err := f.taskService.UpdateCategory(ctx, f.position, category); err != nil {
			f.err = err
			return f, nil
		}
	}
	if strings.TrimSpace(description) != f.original.Description {
		if err := f.taskService.UpdateDescription(ctx, f.position, description); err != nil {
			f.err = err
			return f, nil
		}
	}
	f.err = nil
	return f, func() tea.Msg { return taskSavedMsg{} }
}
