package theme

import (
	"charm.land/lipgloss/v2"
)

// Space palette: dark sky, bright signal colours.
var (
	Primary   = lipgloss.Color("#00FF00") // Signal green
	Secondary = lipgloss.Color("#6FDD86") // Soft green
	Accent    = lipgloss.Color("#FFFF00") // Star yellow
	Success   = lipgloss.Color("#66FF66") // Bright green
	Error     = lipgloss.Color("#FF6666") // Soft red
	Text      = lipgloss.Color("#FFFFFF") // White
	TextDim   = lipgloss.Color("#9CA3AF") // Grey
	BgDark    = lipgloss.Color("#000014") // Night sky
	BgCard    = lipgloss.Color("#333333") // Panel
	Border    = lipgloss.Color("#4B5563") // Panel edge
	Locked    = lipgloss.Color("#6B7280") // Unavailable level
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Problem is the large arithmetic question.
	Problem = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Padding(0, 2)
)

// Panels
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	AnswerBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Accent).
			Foreground(Accent).
			Bold(true).
			Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Locked)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Accent)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)

	PadKey = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	PadKeyDisabled = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Locked).
			Padding(0, 2)
)
