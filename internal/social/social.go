// Package social fabricates friends from share codes and ranks them against
// the local user. Nothing here talks to the network: a friend is a pure
// function of the code that was typed in.
package social

import (
	"sort"
	"strings"
)

var (
	friendNames = [...]string{"Alex", "Jordan", "Casey", "Sam", "Taylor", "Morgan", "Riley", "Quinn"}
	petTypes    = [...]string{"cat", "dog", "fox", "panda", "bear", "bunny"}
	petColors   = [...]string{"#fca5a5", "#93c5fd", "#86efac", "#fcd34d", "#d8b4fe"}
)

type Friend struct {
	ID           string `json:"id" yaml:"id"`
	Code         string `json:"code" yaml:"code"`
	Name         string `json:"name" yaml:"name"`
	PetType      string `json:"petType" yaml:"pet_type"`
	PetColor     string `json:"petColor" yaml:"pet_color"`
	WeeklyScore  int    `json:"weeklyScore" yaml:"weekly_score"`
	MonthlyScore int    `json:"monthlyScore" yaml:"monthly_score"`
	IsBot        bool   `json:"isBot" yaml:"is_bot"`
}

// NormalizeCode trims and upper-cases a share code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Hash is the 31-multiplier string hash over UTF-16 code units. Only the
// shifted term is truncated to 32 bits, so the running value may leave the
// int32 range; the result is made non-negative.
func Hash(s string) int {
	var h int64
	for _, u := range utf16Units(s) {
		h = int64(u) + int64(int32(h)<<5) - h
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

func utf16Units(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 0x10000:
			r -= 0x10000
			out = append(out, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
		default:
			out = append(out, uint16(r))
		}
	}
	return out
}

// Generate derives the pseudo identity for code. The returned friend has no
// ID; callers assign one when they store it. code is expected normalized.
func Generate(code string) Friend {
	h := Hash(code)
	prefix := code
	if r := []rune(code); len(r) > 2 {
		prefix = string(r[:2])
	}
	return Friend{
		Code:         code,
		Name:         friendNames[h%len(friendNames)] + " " + prefix,
		PetType:      petTypes[h%len(petTypes)],
		PetColor:     petColors[h%len(petColors)],
		WeeklyScore:  h%15 + 3,
		MonthlyScore: h%40 + 10,
		IsBot:        true,
	}
}

// Window selects the leaderboard metric.
type Window string

const (
	Weekly  Window = "weekly"
	Monthly Window = "monthly"
)

// ParseWindow maps user input to a Window. Anything but "monthly" is weekly.
func ParseWindow(s string) Window {
	if strings.EqualFold(strings.TrimSpace(s), string(Monthly)) {
		return Monthly
	}
	return Weekly
}

type Entry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PetType string `json:"petType,omitempty"`
	Score   int    `json:"score"`
	IsUser  bool   `json:"isUser"`
}

// UserEntryID identifies the local user on a leaderboard.
const UserEntryID = "me"

// Rank puts the user first, then friends in list order, and stable-sorts the
// lot by the window's score, highest first.
func Rank(weekly, monthly int, friends []Friend, w Window) []Entry {
	user := Entry{ID: UserEntryID, Name: "You", Score: weekly, IsUser: true}
	if w == Monthly {
		user.Score = monthly
	}
	out := make([]Entry, 0, len(friends)+1)
	out = append(out, user)
	for _, f := range friends {
		score := f.WeeklyScore
		if w == Monthly {
			score = f.MonthlyScore
		}
		out = append(out, Entry{ID: f.ID, Name: f.Name, PetType: f.PetType, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
