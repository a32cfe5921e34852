package services

import (
	"context"
	"slices"
	"strings"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/errs"
	"tasktrack/internal/domain/interfaces"

	"go.uber.org/zap"
)

type TaskService interface {
	Tasks() []*entities.Task
	AddTask(ctx context.Context, title, priority, dueDate, category, description string) (*entities.Task, error)
	UpdateTitle(ctx context.Context, index int, title string) error
	UpdatePriority(ctx context.Context, index int, priority string) error
	UpdateDueDate(ctx context.Context, index int, dueDate string) error
	UpdateCategory(ctx context.Context, index int, category string) error
	UpdateDescription(ctx context.Context, index int, description string) error
	ToggleTask(ctx context.Context, index int) (*entities.Task, error)
	DeleteTask(ctx context.Context, index int) (*entities.Task, error)
	Filter(f Filter) []*entities.Task
	Sort(key SortKey) []*entities.Task
	Search(keyword string) []*entities.Task
	Statistics() Statistics
}

// taskService owns the single in-memory collection for the run. The
// collection is loaded once at construction and every mutation persists it
// back immediately; when a save fails the in-memory change is rolled back so
// memory never runs ahead of the restored file.
type taskService struct {
	taskRepo interfaces.TaskRepository
	logger   *zap.Logger
	tasks    []*entities.Task
}

func NewTaskService(ctx context.Context, taskRepo interfaces.TaskRepository, logger *zap.Logger) (*taskService, error) {
	tasks, err := taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded tasks", zap.Int("count", len(tasks)))

	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
		tasks:    tasks,
	}, nil
}

// Tasks returns a snapshot of the collection in storage order. Positions in
// the snapshot are valid arguments for the position-taking operations.
func (s *taskService) Tasks() []*entities.Task {
	snapshot := make([]*entities.Task, len(s.tasks))
	for i, t := range s.tasks {
		snapshot[i] = t.Clone()
	}
	return snapshot
}

func (s *taskService) AddTask(ctx context.Context, title, priority, dueDate, category, description string) (*entities.Task, error) {
	title, err := ValidateTitle(title, s.tasks, -1, NewTitleIndex(s.tasks))
	if err != nil {
		return nil, err
	}

	prio := entities.PriorityMedium
	if strings.TrimSpace(priority) != "" {
		if prio, err = entities.ParsePriority(priority); err != nil {
			return nil, err
		}
	}

	dueDate = strings.TrimSpace(dueDate)
	if dueDate != "" {
		if err := entities.ValidateDate(dueDate); err != nil {
			return nil, err
		}
	}

	task := entities.NewTask(title, prio, dueDate, category, strings.TrimSpace(description))
	s.tasks = append(s.tasks, task)
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return nil, err
	}

	return task.Clone(), nil
}

func (s *taskService) UpdateTitle(ctx context.Context, index int, title string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	title, err := ValidateTitle(title, s.tasks, index, NewTitleIndex(s.tasks))
	if err != nil {
		return err
	}

	prev := s.tasks[index].Title
	s.tasks[index].Title = title
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks[index].Title = prev
		return err
	}
	return nil
}

func (s *taskService) UpdatePriority(ctx context.Context, index int, priority string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	// Unlike add, an explicit priority is required here: an empty choice is
	// rejected rather than silently reset to medium.
	prio, err := entities.ParsePriority(priority)
	if err != nil {
		return err
	}

	prev := s.tasks[index].Priority
	s.tasks[index].Priority = prio
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks[index].Priority = prev
		return err
	}
	return nil
}

func (s *taskService) UpdateDueDate(ctx context.Context, index int, dueDate string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	dueDate = strings.TrimSpace(dueDate)
	if dueDate != "" {
		if err := entities.ValidateDate(dueDate); err != nil {
			return err
		}
	}

	prev := s.tasks[index].DueDate
	s.tasks[index].DueDate = dueDate
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks[index].DueDate = prev
		return err
	}
	return nil
}

func (s *taskService) UpdateCategory(ctx context.Context, index int, category string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	// Unlike add, a blank category is rejected rather than defaulted.
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.EmptyCategoryErrorf("task category cannot be empty")
	}

	prev := s.tasks[index].Category
	s.tasks[index].Category = category
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks[index].Category = prev
		return err
	}
	return nil
}

func (s *taskService) UpdateDescription(ctx context.Context, index int, description string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	prev := s.tasks[index].Description
	s.tasks[index].Description = strings.TrimSpace(description)
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks[index].Description = prev
		return err
	}
	return nil
}

func (s *taskService) ToggleTask(ctx context.Context, index int) (*entities.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}

	s.tasks[index].Completed = !s.tasks[index].Completed
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks[index].Completed = !s.tasks[index].Completed
		return nil, err
	}
	return s.tasks[index].Clone(), nil
}

func (s *taskService) DeleteTask(ctx context.Context, index int) (*entities.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}

	removed := s.tasks[index]
	s.tasks = slices.Delete(s.tasks, index, index+1)
	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks = slices.Insert(s.tasks, index, removed)
		return nil, err
	}
	return removed, nil
}

func (s *taskService) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return errs.IndexOutOfRangeErrorf("task %d does not exist", index+1)
	}
	return nil
}

// verify interface implementation
var _ TaskService = &taskService{}
