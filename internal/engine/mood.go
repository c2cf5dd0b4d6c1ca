package engine

import "time"

const (
	recentCompletionWindow = 5 * time.Minute
	urgentWindow           = 24 * time.Hour
	sadUrgentCount         = 3
)

// ComputeMood derives the pet's mood from the task list at now.
func ComputeMood(tasks []Task, now time.Time) Mood {
	urgent, overdue := 0, 0
	for _, t := range tasks {
		if t.Completed {
			if t.CompletedAt != nil && now.Sub(*t.CompletedAt) < recentCompletionWindow {
				return MoodHappy
			}
			continue
		}
		left := t.Deadline.Sub(now)
		switch {
		case left < 0:
			overdue++
		case left > 0 && left < urgentWindow:
			urgent++
		}
	}
	switch {
	case overdue > 0 || urgent >= sadUrgentCount:
		return MoodSad
	case urgent > 0:
		return MoodNeutral
	default:
		return MoodHappy
	}
}

// UrgentCount is the number of open tasks due within the next day.
func UrgentCount(tasks []Task, now time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if left := t.Deadline.Sub(now); left > 0 && left < urgentWindow {
			n++
		}
	}
	return n
}
