package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"tasktrack/internal/domain/errs"
	"tasktrack/internal/domain/services"
	"tasktrack/internal/impl/export"
	repositoriesJson "tasktrack/internal/impl/repositories/json"
)

func newTestService(t *testing.T) services.TaskService {
	t.Helper()
	repo := repositoriesJson.NewJSONTaskRepository(filepath.Join(t.TempDir(), "tasks.json"), zap.NewNop())
	service, err := services.NewTaskService(context.Background(), repo, zap.NewNop())
	assert.NoError(t, err)
	return service
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTaskViewToggleKey(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	_, err := service.AddTask(ctx, "Buy milk", "", "", "", "")
	assert.NoError(t, err)

	view := NewTaskView(service)
	view, cmd := view.Update(keyMsg('t'))

	// The toggle lands before Update returns; no command is left behind to
	// touch the collection later.
	assert.Nil(t, cmd)
	assert.NoError(t, view.err)
	assert.True(t, service.Tasks()[0].Completed)

	items := view.list.Items()
	assert.Len(t, items, 1)
	assert.True(t, items[0].(taskItem).task.Completed)
}

func TestTaskViewDeleteKey(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	_, err := service.AddTask(ctx, "Buy milk", "", "", "", "")
	assert.NoError(t, err)
	_, err = service.AddTask(ctx, "Walk dog", "", "", "", "")
	assert.NoError(t, err)

	view := NewTaskView(service)
	view, cmd := view.Update(keyMsg('d'))

	assert.Nil(t, cmd)
	assert.NoError(t, view.err)

	tasks := service.Tasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, "Walk dog", tasks[0].Title)
	assert.Len(t, view.list.Items(), 1)
}

func TestTaskFormSubmitAdd(t *testing.T) {
	service := newTestService(t)
	form := NewTaskForm(service)
	form.SetAdd()
	form.inputs[fieldTitle].SetValue("Buy milk")

	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The add lands before Update returns; the command only reports it.
	assert.NoError(t, form.err)
	assert.Len(t, service.Tasks(), 1)
	if assert.NotNil(t, cmd) {
		assert.IsType(t, taskSavedMsg{}, cmd())
	}
}

func TestTaskFormSubmitEdit(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	_, err := service.AddTask(ctx, "Buy milk", "", "", "", "")
	assert.NoError(t, err)

	form := NewTaskForm(service)
	form.SetEdit(service.Tasks()[0], 0)
	form.inputs[fieldDueDate].SetValue("2026-09-01")

	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NoError(t, form.err)
	assert.Equal(t, "2026-09-01", service.Tasks()[0].DueDate)
	if assert.NotNil(t, cmd) {
		assert.IsType(t, taskSavedMsg{}, cmd())
	}
}

func TestTaskFormSubmitRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	_, err := service.AddTask(ctx, "Buy milk", "", "", "", "")
	assert.NoError(t, err)

	form := NewTaskForm(service)
	form.SetAdd()
	form.inputs[fieldTitle].SetValue("buy milk")

	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The failure is visible as soon as Update returns.
	assert.Nil(t, cmd)
	assert.IsType(t, &errs.DuplicateTitleError{}, form.err)
	assert.Len(t, service.Tasks(), 1)
}

func TestExportCommandWritesSnapshot(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	_, err := service.AddTask(ctx, "Buy milk", "", "", "", "")
	assert.NoError(t, err)

	app := NewTUI(service, export.NewCSVExporter(), export.NewTextExporter(), t.TempDir())
	_, cmd := app.Update(startExportMsg{format: "csv"})
	assert.NotNil(t, cmd)

	// The command holds the collection as it was when the export started.
	_, err = service.AddTask(ctx, "Walk dog", "", "", "", "")
	assert.NoError(t, err)

	msg := cmd()
	exported, ok := msg.(exportedMsg)
	assert.True(t, ok)

	data, err := os.ReadFile(exported.path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "Buy milk")
	assert.NotContains(t, string(data), "Walk dog")
}

func TestStatsViewInitSnapshot(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	_, err := service.AddTask(ctx, "Buy milk", "", "", "", "")
	assert.NoError(t, err)

	view := NewStatsView(service)
	cmd := view.Init()
	assert.NotNil(t, cmd)

	// The command holds the statistics computed when the view opened.
	_, err = service.AddTask(ctx, "Walk dog", "", "", "", "")
	assert.NoError(t, err)

	msg := cmd()
	loaded, ok := msg.(statsLoadedMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, loaded.stats.Total)
}
