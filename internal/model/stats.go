package model

import "strings"

// TaskStats aggregates task counters for the dashboard.
type TaskStats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	// DueToday counts tasks whose due date text mentions today.
	DueToday   int
	ByPriority map[Priority]int
}

// ComputeStats counts tasks per status and per priority.
func ComputeStats(tasks []Task) TaskStats {
	stats := TaskStats{
		Total:      len(tasks),
		ByPriority: make(map[Priority]int, len(Priorities)),
	}
	for _, p := range Priorities {
		stats.ByPriority[p] = 0
	}

	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
		if t.IsDueToday() {
			stats.DueToday++
		}
		stats.ByPriority[t.Priority]++
	}
	return stats
}

// IsDueToday reports whether the display due date says "Today". The text is
// matched, not parsed.
func (t Task) IsDueToday() bool {
	return strings.Contains(t.DueDate, "Today") || strings.Contains(t.DueDate, "today")
}
