package interfaces

import (
	"io"

	"tasktrack/internal/domain/entities"
)

// TaskExporter writes an already-validated collection to a sink. Exporters
// perform no validation of their own.
type TaskExporter interface {
	Export(w io.Writer, tasks []*entities.Task) error
}
