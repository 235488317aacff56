package checklist

import "adhd-planner/internal/model"

// GetStats calculates checklist statistics
func GetStats(entry model.ChecklistEntry) Stats {
	total := len(entry.Items)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, item := range entry.Items {
		if item.Completed {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// IsFullyCompleted reports whether every item is checked. An empty checklist is never complete.
func IsFullyCompleted(entry model.ChecklistEntry) bool {
	if len(entry.Items) == 0 {
		return false
	}
	for _, item := range entry.Items {
		if !item.Completed {
			return false
		}
	}
	return true
}
