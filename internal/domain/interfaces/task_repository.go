package interfaces

import (
	"context"

	"tasktrack/internal/domain/entities"
)

// TaskRepository persists the whole task collection as one unit. Load is
// called once at startup; Save replaces the persisted collection after every
// mutation.
type TaskRepository interface {
	Load(ctx context.Context) ([]*entities.Task, error)
	Save(ctx context.Context, tasks []*entities.Task) error
}
