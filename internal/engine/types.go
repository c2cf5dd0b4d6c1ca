package engine

import (
	"time"

	"petquest/internal/catalog"
	"petquest/internal/social"
)

// Task is a user to-do with a deadline. CompletedAt and PointsEarned are set
// only while Completed is true.
type Task struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Deadline     time.Time  `json:"deadline" yaml:"deadline"`
	Completed    bool       `json:"completed" yaml:"completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
	PointsEarned *int       `json:"pointsEarned,omitempty" yaml:"points_earned,omitempty"`
	CategoryID   string     `json:"categoryId,omitempty" yaml:"category_id,omitempty"`
}

// UserStats is mutated only by completion and undo. LastCompletionDate is a
// local calendar date (YYYY-MM-DD) or empty.
type UserStats struct {
	TotalCompleted     int    `json:"totalCompleted" yaml:"total_completed"`
	WeeklyCompleted    int    `json:"weeklyCompleted" yaml:"weekly_completed"`
	MonthlyCompleted   int    `json:"monthlyCompleted" yaml:"monthly_completed"`
	CurrentStreak      int    `json:"currentStreak" yaml:"current_streak"`
	LastCompletionDate string `json:"lastCompletionDate,omitempty" yaml:"last_completion_date,omitempty"`
	EarlyCompletions   int    `json:"earlyCompletions" yaml:"early_completions"`
	TotalPointsEarned  int    `json:"totalPointsEarned" yaml:"total_points_earned"`
}

// Achievement is a catalog definition plus its unlock state.
type Achievement struct {
	catalog.AchievementDef `yaml:",inline"`
	Unlocked               bool       `json:"unlocked" yaml:"unlocked"`
	UnlockedAt             *time.Time `json:"unlockedAt,omitempty" yaml:"unlocked_at,omitempty"`
}

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// CompleteResult describes what a completion changed.
type CompleteResult struct {
	TaskID          string
	Earned          int
	Stats           UserStats
	NewAchievements []string
	NewPets         []string
}

// State is a detached copy of everything the engine owns.
type State struct {
	Points            int                `json:"points" yaml:"points"`
	Tasks             []Task             `json:"tasks" yaml:"tasks"`
	Pets              []string           `json:"pets" yaml:"pets"`
	ActivePetID       string             `json:"activePetId" yaml:"active_pet_id"`
	Accessories       []string           `json:"accessories" yaml:"accessories"`
	ActiveAccessoryID string             `json:"activeAccessoryId,omitempty" yaml:"active_accessory_id,omitempty"`
	Themes            []string           `json:"themes" yaml:"themes"`
	ActiveThemeID     string             `json:"activeThemeId" yaml:"active_theme_id"`
	Categories        []catalog.Category `json:"categories" yaml:"categories"`
	Achievements      []Achievement      `json:"achievements" yaml:"achievements"`
	Stats             UserStats          `json:"stats" yaml:"stats"`
	Friends           []social.Friend    `json:"friends" yaml:"friends"`
	UserCode          string             `json:"userCode" yaml:"user_code"`
}

func (s *State) clone() *State {
	out := *s
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Pets = append([]string(nil), s.Pets...)
	out.Accessories = append([]string(nil), s.Accessories...)
	out.Themes = append([]string(nil), s.Themes...)
	out.Categories = append([]catalog.Category(nil), s.Categories...)
	out.Achievements = append([]Achievement(nil), s.Achievements...)
	out.Friends = append([]social.Friend(nil), s.Friends...)
	return &out
}

func (s *State) taskIndex(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// CategoryName resolves a task's category for display. Unknown or empty ids
// read as Uncategorized.
func (s *State) CategoryName(id string) string {
	for _, c := range s.Categories {
		if c.ID == id && id != "" {
			return c.Name
		}
	}
	return Uncategorized
}

const Uncategorized = "Uncategorized"
