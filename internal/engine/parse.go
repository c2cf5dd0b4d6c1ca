package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var deadlineLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseDeadline parses user input into a deadline relative to now.
// Supported: "30m", "3h", "2d", "1w", "today", "tomorrow" (both 23:59 local),
// "YYYY-MM-DD" (end of that day), "YYYY-MM-DD HH:MM" and RFC 3339.
func ParseDeadline(input string, now time.Time, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, loc)
	}

	switch s {
	case "":
		return time.Time{}, fmt.Errorf("deadline is required")
	case "today":
		return endOfDay(local), nil
	case "tomorrow":
		return endOfDay(local.AddDate(0, 0, 1)), nil
	}

	if d, ok := parseRelative(s); ok {
		return now.Add(d), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return endOfDay(t), nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, strings.ToUpper(s), loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline: %q", input)
}

func parseRelative(s string) (time.Duration, bool) {
	if len(s) < 2 {
		return 0, false
	}
	unit := s[len(s)-1]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	switch unit {
	case 'm':
		return time.Duration(n) * time.Minute, true
	case 'h':
		return time.Duration(n) * time.Hour, true
	case 'd':
		return time.Duration(n) * 24 * time.Hour, true
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, true
	default:
		return 0, false
	}
}
