package engine

import (
	"math"
	"time"
)

const (
	BasePoints = 50
	// BonusPerHour accrues for each hour left before the deadline; the total is floored.
	BonusPerHour = 2

	earlyThreshold = 24 * time.Hour
	dateLayout     = "2006-01-02"
)

// Score returns the points for completing a task due at deadline at now.
// Overdue tasks earn the base amount.
func Score(deadline, now time.Time) int {
	hours := math.Max(0, deadline.Sub(now).Hours())
	return BasePoints + int(math.Floor(hours*BonusPerHour))
}

// IsEarly reports whether a completion at now is more than a day ahead of deadline.
func IsEarly(deadline, now time.Time) bool {
	return deadline.Sub(now) > earlyThreshold
}

// NextStreak returns the streak after a completion on today. last is the
// previous completion date; both are YYYY-MM-DD in the user's zone.
func NextStreak(current int, last, today, yesterday string) int {
	switch last {
	case today:
		return current
	case yesterday:
		return current + 1
	default:
		return 1
	}
}

// applyCompletion returns stats after completing a task due at deadline.
func applyCompletion(s UserStats, deadline, now time.Time, earned int, loc *time.Location) UserStats {
	local := now.In(loc)
	today := local.Format(dateLayout)
	yesterday := local.AddDate(0, 0, -1).Format(dateLayout)

	s.TotalCompleted++
	s.WeeklyCompleted++
	s.MonthlyCompleted++
	s.CurrentStreak = NextStreak(s.CurrentStreak, s.LastCompletionDate, today, yesterday)
	s.LastCompletionDate = today
	if IsEarly(deadline, now) {
		s.EarlyCompletions++
	}
	s.TotalPointsEarned += earned
	return s
}
