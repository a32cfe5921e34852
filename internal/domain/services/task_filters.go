package services

import (
	"cmp"
	"slices"
	"strings"

	"tasktrack/internal/domain/entities"
)

// StatusFilter narrows a view to pending or completed tasks.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// Filter describes a view over the collection. The zero value matches every
// task; each set field narrows the result further.
type Filter struct {
	Status   StatusFilter
	Priority entities.Priority // empty matches any priority
	Category string            // empty matches any category; compared case-insensitively
}

// SortKey selects the ordering for Sort.
type SortKey string

const (
	SortByDueDate  SortKey = "due"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
	SortByCategory SortKey = "category"
)

// NextSortKey cycles through the sort orderings in menu order.
func NextSortKey(key SortKey) SortKey {
	switch key {
	case SortByDueDate:
		return SortByPriority
	case SortByPriority:
		return SortByTitle
	case SortByTitle:
		return SortByCategory
	default:
		return SortByDueDate
	}
}

// Statistics summarizes the collection for the stats view.
type Statistics struct {
	Total      int
	Completed  int
	Pending    int
	ByPriority map[entities.Priority]int
	ByCategory map[string]int
}

func (st Statistics) CompletedPercent() float64 {
	if st.Total == 0 {
		return 0
	}
	return float64(st.Completed) / float64(st.Total) * 100
}

func (st Statistics) PendingPercent() float64 {
	if st.Total == 0 {
		return 0
	}
	return float64(st.Pending) / float64(st.Total) * 100
}

func (s *taskService) Filter(f Filter) []*entities.Task {
	var matches []*entities.Task
	for _, t := range s.tasks {
		switch f.Status {
		case StatusPending:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		matches = append(matches, t.Clone())
	}
	return matches
}

// Sort returns the collection ordered by key. The owned collection keeps its
// storage order; only the returned snapshot is sorted.
func (s *taskService) Sort(key SortKey) []*entities.Task {
	return SortTasks(s.Tasks(), key)
}

// SortTasks stably orders tasks in place by key and returns the slice. An
// unknown key keeps the given order.
func SortTasks(tasks []*entities.Task, key SortKey) []*entities.Task {
	switch key {
	case SortByDueDate:
		slices.SortStableFunc(tasks, func(a, b *entities.Task) int {
			return cmp.Compare(dueDateRank(a), dueDateRank(b))
		})
	case SortByPriority:
		slices.SortStableFunc(tasks, func(a, b *entities.Task) int {
			return cmp.Compare(priorityRank(a.Priority), priorityRank(b.Priority))
		})
	case SortByTitle:
		slices.SortStableFunc(tasks, func(a, b *entities.Task) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	case SortByCategory:
		slices.SortStableFunc(tasks, func(a, b *entities.Task) int {
			return cmp.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		})
	}
	return tasks
}

// dueDateRank sorts ISO dates lexicographically; tasks without a deadline
// rank after every dated task.
func dueDateRank(t *entities.Task) string {
	if t.DueDate == "" {
		return "9999-99-99"
	}
	return t.DueDate
}

func priorityRank(p entities.Priority) int {
	switch p {
	case entities.PriorityHigh:
		return 0
	case entities.PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Search matches the keyword case-insensitively against title, description,
// and category. An empty keyword matches nothing.
func (s *taskService) Search(keyword string) []*entities.Task {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	var matches []*entities.Task
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), keyword) ||
			(t.Description != "" && strings.Contains(strings.ToLower(t.Description), keyword)) ||
			strings.Contains(strings.ToLower(t.Category), keyword) {
			matches = append(matches, t.Clone())
		}
	}
	return matches
}

func (s *taskService) Statistics() Statistics {
	stats := Statistics{
		Total: len(s.tasks),
		ByPriority: map[entities.Priority]int{
			entities.PriorityLow:    0,
			entities.PriorityMedium: 0,
			entities.PriorityHigh:   0,
		},
		ByCategory: make(map[string]int),
	}

	for _, t := range s.tasks {
		if t.Completed {
			stats.Completed++
		}
		stats.ByPriority[t.Priority]++
		stats.ByCategory[t.Category]++
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
