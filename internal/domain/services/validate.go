package services

import (
	"strings"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/errs"
)

// TitleIndex maps lowercased titles to their positions in the collection.
// It is a pure lookup optimization for ValidateTitle on large collections.
type TitleIndex map[string]int

func NewTitleIndex(tasks []*entities.Task) TitleIndex {
	index := make(TitleIndex, len(tasks))
	for i, t := range tasks {
		index[strings.ToLower(t.Title)] = i
	}
	return index
}

// ValidateTitle trims the candidate and enforces the title invariants:
// non-empty after trimming and case-insensitively unique across the
// collection. excludeIndex names one position the uniqueness check ignores
// (the task being renamed); pass -1 when adding. A non-nil index replaces the
// linear scan with a map lookup; accept/reject outcomes are identical with or
// without it.
func ValidateTitle(candidate string, tasks []*entities.Task, excludeIndex int, index TitleIndex) (string, error) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return "", errs.EmptyTitleErrorf("task title cannot be empty")
	}

	lower := strings.ToLower(trimmed)
	if index != nil {
		if i, ok := index[lower]; ok && i != excludeIndex {
			return "", errs.DuplicateTitleErrorf("a task titled %q already exists", trimmed)
		}
		return trimmed, nil
	}

	for i, t := range tasks {
		if i == excludeIndex {
			continue
		}
		if strings.ToLower(t.Title) == lower {
			return "", errs.DuplicateTitleErrorf("a task titled %q already exists", trimmed)
		}
	}
	return trimmed, nil
}
