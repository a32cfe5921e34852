package export

import (
	"io"
	"strings"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/interfaces"
)

const csvHeader = "Title,Status,Priority,Due Date,Category,Description"

// CSVExporter writes one row per task with every value double-quoted, so
// titles and descriptions may contain commas and quotes.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(w io.Writer, tasks []*entities.Task) error {
	var b strings.Builder
	b.WriteString(csvHeader + "\n")
	for _, t := range tasks {
		values := []string{t.Title, statusLabel(t), string(t.Priority), t.DueDate, t.Category, t.Description}
		for i, v := range values {
			values[i] = quote(v)
		}
		b.WriteString(strings.Join(values, ",") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func statusLabel(t *entities.Task) string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

var _ interfaces.TaskExporter = &CSVExporter{}
