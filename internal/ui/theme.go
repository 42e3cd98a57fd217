package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lock In theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMosque  = "🕌"
	IconStudy   = "📚"
	IconSparkle = "✨"
	IconRelapse = "⚠️"
	IconClean   = "⏰"
	IconTrophy  = "🏆"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconNote    = "📝"
	IconCheck   = "✅"
	IconDay     = "🌅"
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

// Signed renders a point amount with its sign, colored by direction.
func Signed(points int) string {
	if points >= 0 {
		return Good.Render(fmt.Sprintf("+%d", points))
	}
	return Bad.Render(fmt.Sprintf("%d", points))
}

// CategoryIcon returns the display icon for an activity category.
func CategoryIcon(category string) string {
	switch category {
	case "prayer":
		return IconMosque
	case "study":
		return IconStudy
	case "good":
		return IconSparkle
	case "relapse":
		return IconRelapse
	case "clean":
		return IconClean
	default:
		return IconNote
	}
}

// ProgressBar renders a fixed-width ASCII bar for a 0-100 percentage.
func ProgressBar(pct int, width int) string {
	if width <= 3 {
		width = 3
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
