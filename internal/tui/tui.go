package tui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"tasktrack/internal/domain/interfaces"
	"tasktrack/internal/domain/services"
)

// TUI composes the screens and routes messages between them. The service is
// only touched from Update and Init, which the runtime calls one message at a
// time; commands handed back to the runtime either deliver a message or write
// a snapshot to disk.
type TUI struct {
	taskService  services.TaskService
	csvExporter  interfaces.TaskExporter
	textExporter interfaces.TaskExporter
	exportDir    string

	taskView  TaskView
	taskForm  TaskForm
	statsView StatsView
	helpView  HelpView

	state string
}

func NewTUI(taskService services.TaskService, csvExporter, textExporter interfaces.TaskExporter, exportDir string) TUI {
	return TUI{
		taskService:  taskService,
		csvExporter:  csvExporter,
		textExporter: textExporter,
		exportDir:    exportDir,

		taskView:  NewTaskView(taskService),
		taskForm:  NewTaskForm(taskService),
		statsView: NewStatsView(taskService),
		helpView:  NewHelpView(),

		state: "tasks/view",
	}
}

func (t TUI) Init() tea.Cmd {
	return tea.Batch(
		t.taskView.Init(),
		t.taskForm.Init(),
		t.statsView.Init(),
		t.helpView.Init(),
	)
}

func (t TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Handle form messages
	case startAddTaskMsg:
		t.state = "tasks/form"
		t.taskForm.SetAdd()
		return t, t.taskForm.Init()
	case startEditTaskMsg:
		t.state = "tasks/form"
		t.taskForm.SetEdit(msg.task, msg.position)
		return t, t.taskForm.Init()
	case taskSavedMsg:
		t.state = "tasks/view"
		var cmd tea.Cmd
		t.taskView, cmd = t.taskView.Update(msg)
		return t, cmd
	case formCancelledMsg:
		t.state = "tasks/view"
		t.taskView.reload()
		return t, nil

	// Handle stats view messages
	case startStatsMsg:
		t.state = "tasks/stats"
		return t, t.statsView.Init()
	case statsCancelledMsg:
		t.state = "tasks/view"
		return t, nil

	// Handle help view messages
	case startHelpMsg:
		t.state = "tasks/help"
		return t, t.helpView.Init()
	case helpCancelledMsg:
		t.state = "tasks/view"
		return t, nil

	// Handle export messages
	case startExportMsg:
		return t, t.exportTasksCmd(msg.format)
	case exportedMsg:
		t.state = "tasks/view"
		var cmd tea.Cmd
		t.taskView, cmd = t.taskView.Update(msg)
		return t, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return t, tea.Quit
		}

	case tea.WindowSizeMsg:
		var (
			cmd  tea.Cmd
			cmds []tea.Cmd
		)

		t.taskView, cmd = t.taskView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.taskForm, cmd = t.taskForm.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.statsView, cmd = t.statsView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.helpView, cmd = t.helpView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		return t, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch t.state {
	case "tasks/view":
		t.taskView, cmd = t.taskView.Update(msg)
	case "tasks/form":
		t.taskForm, cmd = t.taskForm.Update(msg)
	case "tasks/stats":
		t.statsView, cmd = t.statsView.Update(msg)
	case "tasks/help":
		t.helpView, cmd = t.helpView.Update(msg)
	}
	return t, cmd
}

func (t TUI) View() string {
	switch t.state {
	case "tasks/view":
		return t.taskView.View()
	case "tasks/form":
		return t.taskForm.View()
	case "tasks/stats":
		return t.statsView.View()
	case "tasks/help":
		return t.helpView.View()
	}

	return "Error: Invalid state"
}

// exportTasksCmd reads the collection here, on the update loop. The returned
// command only writes the snapshot to disk.
func (t TUI) exportTasksCmd(format string) tea.Cmd {
	exporter := t.csvExporter
	name := "tasks_export.csv"
	if format == "text" {
		exporter = t.textExporter
		name = "tasks_export.txt"
	}
	path := filepath.Join(t.exportDir, name)
	tasks := t.taskService.Tasks()

	return func() tea.Msg {
		file, err := os.Create(path)
		if err != nil {
			return errMsg(err)
		}
		defer file.Close()

		if err := exporter.Export(file, tasks); err != nil {
			return errMsg(err)
		}
		return exportedMsg{path: path}
	}
}
