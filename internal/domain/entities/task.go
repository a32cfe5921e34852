package entities

import (
	"encoding/json"
	"strings"
	"time"

	"tasktrack/internal/domain/errs"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// DefaultCategory is applied wherever a category is absent or blank.
const DefaultCategory = "general"

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return errs.InvalidPriorityErrorf("invalid priority: %q", string(p))
	}
}

// ParsePriority normalizes and validates a priority string. The empty string
// is rejected; callers that want the medium default apply it themselves.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// ValidateDate checks that s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return errs.InvalidDateErrorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return nil
}

// Task is a single entry in the tracked collection. Tasks carry no identity
// beyond their title; operations address them by position.
type Task struct {
	Title       string   `json:"title"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
}

func NewTask(title string, priority Priority, dueDate, category, description string) *Task {
	if category = strings.TrimSpace(category); category == "" {
		category = DefaultCategory
	}
	return &Task{
		Title:       title,
		Completed:   false,
		Priority:    priority,
		DueDate:     dueDate,
		Category:    category,
		Description: description,
	}
}

func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}

// Icon returns the marker used wherever a priority is displayed.
func (p Priority) Icon() string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// StatusIcon returns the marker used wherever completion is displayed.
func (t *Task) StatusIcon() string {
	if t.Completed {
		return "✅"
	}
	return "❌"
}

// UnmarshalJSON decodes a task record, applying the documented defaults for
// absent optional fields and rejecting records that violate the invariants.
// A record with an unrecognized priority, an unparseable due date, or a blank
// title fails with a MalformedRecordError instead of being silently repaired.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title       string    `json:"title"`
		Completed   bool      `json:"completed"`
		Priority    *Priority `json:"priority"`
		DueDate     string    `json:"due_date"`
		Category    *string   `json:"category"`
		Description string    `json:"description"`
		Color       string    `json:"color"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if strings.TrimSpace(raw.Title) == "" {
		return errs.MalformedRecordErrorf("task record has an empty title")
	}

	priority := PriorityMedium
	if raw.Priority != nil {
		priority = *raw.Priority
		if err := priority.Validate(); err != nil {
			return errs.MalformedRecordErrorf("task %q has an unrecognized priority %q", raw.Title, string(*raw.Priority))
		}
	}

	if raw.DueDate != "" {
		if err := ValidateDate(raw.DueDate); err != nil {
			return errs.MalformedRecordErrorf("task %q has an invalid due date %q", raw.Title, raw.DueDate)
		}
	}

	category := DefaultCategory
	if raw.Category != nil && strings.TrimSpace(*raw.Category) != "" {
		category = *raw.Category
	}

	t.Title = raw.Title
	t.Completed = raw.Completed
	t.Priority = priority
	t.DueDate = raw.DueDate
	t.Category = category
	t.Description = raw.Description
	t.Color = raw.Color
	return nil
}
