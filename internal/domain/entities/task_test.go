package entities

import (
	"encoding/json"
	"testing"

	"tasktrack/internal/domain/errs"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk", PriorityMedium, "2025-03-01", "", "2% if they have it")

	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.Equal(t, "2025-03-01", task.DueDate)
	assert.Equal(t, "2% if they have it", task.Description)
}

func TestParsePriority(t *testing.T) {
	t.Run("accepts any casing and padding", func(t *testing.T) {
		for _, input := range []string{"low", "Medium", " HIGH "} {
			_, err := ParsePriority(input)
			assert.NoError(t, err, "input %q", input)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, input := range []string{"", "urgent", "2"} {
			_, err := ParsePriority(input)
			assert.IsType(t, &errs.InvalidPriorityError{}, err, "input %q", input)
		}
	})
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-03-01"))

	for _, input := range []string{"03/01/2025", "2025-13-01", "2025-02-30", "yesterday"} {
		err := ValidateDate(input)
		assert.IsType(t, &errs.InvalidDateError{}, err, "input %q", input)
	}
}

func TestTaskClone(t *testing.T) {
	task := NewTask("Original", PriorityHigh, "", "work", "")
	clone := task.Clone()

	clone.Title = "Changed"
	clone.Completed = true

	assert.Equal(t, "Original", task.Title)
	assert.False(t, task.Completed)
}

func TestTaskUnmarshalDefaults(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"title":"Water plants"}`), &task)

	assert.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.Empty(t, task.DueDate)
}

func TestTaskUnmarshalNullPriority(t *testing.T) {
	// A null marker is the encoder's way of writing an absent field, so it
	// must decode like one.
	var task Task
	err := json.Unmarshal([]byte(`{"title":"Read","priority":null}`), &task)

	assert.NoError(t, err)
	assert.Equal(t, PriorityMedium, task.Priority)
}

func TestTaskUnmarshalMalformed(t *testing.T) {
	cases := map[string]string{
		"unknown priority": `{"title":"Read","priority":"urgent"}`,
		"empty priority":   `{"title":"Read","priority":""}`,
		"bad due date":     `{"title":"Read","due_date":"03/01/2025"}`,
		"empty title":      `{"title":"   "}`,
		"missing title":    `{"completed":true}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var task Task
			err := json.Unmarshal([]byte(input), &task)
			assert.IsType(t, &errs.MalformedRecordError{}, err)
		})
	}
}

func TestTaskRoundTrip(t *testing.T) {
	tasks := []*Task{
		NewTask("Buy milk", PriorityMedium, "", "", ""),
		NewTask("File taxes", PriorityHigh, "2025-04-15", "finance", "use last year's folder"),
		{Title: "Old import", Completed: true, Priority: PriorityLow, Category: "general", Color: "#d75f5f"},
	}

	data, err := json.Marshal(tasks)
	assert.NoError(t, err)

	var decoded []*Task
	err = json.Unmarshal(data, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, tasks, decoded)
}

func TestPriorityIcon(t *testing.T) {
	assert.Equal(t, "🔴", PriorityHigh.Icon())
	assert.Equal(t, "🟡", PriorityMedium.Icon())
	assert.Equal(t, "🟢", PriorityLow.Icon())
	assert.Equal(t, "⚪", Priority("urgent").Icon())
}

func TestTaskStatusIcon(t *testing.T) {
	task := NewTask("Buy milk", PriorityMedium, "", "", "")
	assert.Equal(t, "❌", task.StatusIcon())

	task.Completed = true
	assert.Equal(t, "✅", task.StatusIcon())
}
