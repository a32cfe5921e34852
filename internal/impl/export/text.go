package export

import (
	"fmt"
	"io"
	"strings"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/interfaces"
)

// TextExporter writes a human-readable block per task, blank-line separated.
type TextExporter struct{}

func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

func (e *TextExporter) Export(w io.Writer, tasks []*entities.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "%s %s\n", t.StatusIcon(), t.Title)
		fmt.Fprintf(&b, "Priority: %s\n", t.Priority)
		if t.DueDate != "" {
			fmt.Fprintf(&b, "Due: %s\n", t.DueDate)
		}
		fmt.Fprintf(&b, "Category: %s\n", t.Category)
		if t.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", t.Description)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var _ interfaces.TaskExporter = &TextExporter{}
