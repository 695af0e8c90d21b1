package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/content"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Violet
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success)

	StatusErr = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Hex parses a "#RRGGBB" hint, falling back to Primary when empty.
func Hex(hex string) color.Color {
	if hex == "" {
		return Primary
	}
	return lipgloss.Color(hex)
}

// Badge renders label on a solid background of the given hex color.
func Badge(label, hex string) string {
	return lipgloss.NewStyle().
		Background(Hex(hex)).
		Foreground(Text).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// DifficultyColor maps a topic difficulty to a color.
func DifficultyColor(d content.Difficulty) color.Color {
	switch d {
	case content.DifficultyEasy:
		return Success
	case content.DifficultyMedium:
		return Warning
	case content.DifficultyHard:
		return Error
	default:
		return TextDim
	}
}

// LevelColor maps a roadmap level to a color.
func LevelColor(l content.Level) color.Color {
	switch l {
	case content.LevelBeginner:
		return Success
	case content.LevelIntermediate:
		return Warning
	case content.LevelAdvanced:
		return Error
	default:
		return TextDim
	}
}
