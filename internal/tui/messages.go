package tui

import (
	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/services"
)

type (
	startAddTaskMsg  struct{}
	startEditTaskMsg struct {
		task     *entities.Task
		position int
	}
	taskSavedMsg     struct{}
	formCancelledMsg struct{}
)

type (
	startStatsMsg  struct{}
	statsLoadedMsg struct {
		stats services.Statistics
	}
	statsCancelledMsg struct{}
)

type (
	startHelpMsg     struct{}
	helpCancelledMsg struct{}
)

type (
	startExportMsg struct {
		format string
	}
	exportedMsg struct {
		path string
	}
)

type errMsg error
