package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Petquest theme (CLI + TUI): reusable styles and a few emojis.

const (
	IconPaw      = "🐾"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconCoin     = "🪙"
	IconFire     = "🔥"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconShop     = "🛍️"
	IconFriends  = "👥"
	IconClock    = "⏰"
	IconSpeech   = "💬"
	IconUndo     = "↩️"
	IconCategory = "🏷️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	Done        = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)

	BadgeCelebrate = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("GREAT JOB!")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func Points(n int) string {
	return Gold.Render(fmt.Sprintf("%s %d", IconCoin, n))
}

// Swatch renders a block in a hex color. Other color names render blank.
func Swatch(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func MoodFace(mood string) string {
	switch mood {
	case "happy":
		return "(^ᴥ^)"
	case "neutral":
		return "(•ᴥ•)"
	case "sad":
		return "(╥ᴥ╥)"
	default:
		return "(?ᴥ?)"
	}
}

func MoodText(mood string) string {
	switch mood {
	case "happy":
		return Good.Render(mood)
	case "neutral":
		return Warn.Render(mood)
	case "sad":
		return Bad.Render(mood)
	default:
		return Muted.Render(mood)
	}
}

var petIcons = map[string]string{
	"bear":    "🐻",
	"cat":     "🐱",
	"bunny":   "🐰",
	"fox":     "🦊",
	"panda":   "🐼",
	"axolotl": "🦎",
	"dog":     "🐶",
	"koala":   "🐨",
	"pig":     "🐷",
	"frog":    "🐸",
	"penguin": "🐧",
	"raccoon": "🦝",
	"tiger":   "🐯",
	"lion":    "🦁",
	"hamster": "🐹",
	"owl":     "🦉",
}

func PetIcon(petType string) string {
	if icon, ok := petIcons[petType]; ok {
		return icon
	}
	return IconPaw
}

// TimeLeft renders the time until deadline, colored by urgency.
func TimeLeft(deadline, now time.Time) string {
	left := deadline.Sub(now)
	switch {
	case left < 0:
		return Bad.Render("overdue " + Duration(-left))
	case left < 24*time.Hour:
		return Warn.Render(Duration(left) + " left")
	default:
		return Muted.Render(Duration(left) + " left")
	}
}

// Duration formats d coarsely: days and hours, hours and minutes, or minutes.
func Duration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d / (24 * time.Hour))
	hours := int(d%(24*time.Hour)) / int(time.Hour)
	mins := int(d%time.Hour) / int(time.Minute)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh%02dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
