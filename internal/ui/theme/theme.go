package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#0EA5E9") // Sky
	Info    = lipgloss.Color("#3B82F6") // Blue
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#EAB308") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Message boxes, one per report level.
var (
	InfoBox    = messageBox(Info)
	SuccessBox = messageBox(Success)
	WarningBox = messageBox(Warning)
	ErrorBox   = messageBox(Error)
)

// Dashboard
var (
	Tile = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2).
		Width(26)

	TileLabel = lipgloss.NewStyle().
			Foreground(TextDim)

	TileValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	Bar = lipgloss.NewStyle().
		Foreground(Primary)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// Form
var (
	Focused = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Blurred = lipgloss.NewStyle().
		Foreground(TextDim)
)

func messageBox(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(c).
		Foreground(c).
		PaddingLeft(1)
}
