package services

import (
	"testing"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/errs"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	tasks := []*entities.Task{
		entities.NewTask("Buy milk", entities.PriorityMedium, "", "", ""),
		entities.NewTask("Walk dog", entities.PriorityLow, "", "home", ""),
	}

	tests := []struct {
		name         string
		candidate    string
		excludeIndex int
		want         string
		wantErr      error
	}{
		{"accepts new title", "Call dentist", -1, "Call dentist", nil},
		{"trims surrounding whitespace", "  Call dentist  ", -1, "Call dentist", nil},
		{"rejects empty", "", -1, "", &errs.EmptyTitleError{}},
		{"rejects whitespace only", "   ", -1, "", &errs.EmptyTitleError{}},
		{"rejects exact duplicate", "Buy milk", -1, "", &errs.DuplicateTitleError{}},
		{"rejects case variant", "buy MILK", -1, "", &errs.DuplicateTitleError{}},
		{"rejects padded duplicate", "  Buy milk  ", -1, "", &errs.DuplicateTitleError{}},
		{"allows keeping own title on rename", "Buy milk", 0, "Buy milk", nil},
		{"allows case change on rename", "buy milk", 0, "buy milk", nil},
		{"rejects another task's title on rename", "Walk dog", 0, "", &errs.DuplicateTitleError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Outcomes must match with and without the lookup index.
			for _, index := range []TitleIndex{nil, NewTitleIndex(tasks)} {
				got, err := ValidateTitle(tt.candidate, tasks, tt.excludeIndex, index)
				if tt.wantErr != nil {
					assert.Error(t, err)
					assert.IsType(t, tt.wantErr, err)
					assert.Empty(t, got)
				} else {
					assert.NoError(t, err)
					assert.Equal(t, tt.want, got)
				}
			}
		})
	}
}

func TestNewTitleIndex(t *testing.T) {
	tasks := []*entities.Task{
		entities.NewTask("Buy milk", entities.PriorityMedium, "", "", ""),
		entities.NewTask("Walk dog", entities.PriorityLow, "", "home", ""),
	}

	index := NewTitleIndex(tasks)

	assert.Len(t, index, 2)
	assert.Equal(t, 0, index["buy milk"])
	assert.Equal(t, 1, index["walk dog"])
}
