package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - container border
	FocusColor   = lipgloss.Color("#43BF6D") // Green - focused cell underline
	TextColor    = lipgloss.Color("#FFFFFF") // White - entered characters
	SubtleColor  = lipgloss.Color("#626262") // Gray - fixed literals, help
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejected edits
)

// Style is the visual style descriptor of a box.
type Style struct {
	Container   lipgloss.Style
	Cell        lipgloss.Style
	FocusedCell lipgloss.Style
	FixedCell   lipgloss.Style
	HiddenCell  lipgloss.Style
	Title       lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

// StyleOptions are the user-tunable parts of a Style, typically loaded from
// the config file. Empty fields keep the defaults.
type StyleOptions struct {
	Border      string // rounded, normal, double, thick, none
	BorderColor string
	CellColor   string
	FocusColor  string
	FixedColor  string
	Padding     int
}

// underline draws only the bottom edge of a cell
func underline(style lipgloss.Style, color lipgloss.TerminalColor) lipgloss.Style {
	return style.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(color)
}

// DefaultStyle returns the default box style
func DefaultStyle() Style {
	return NewStyle(StyleOptions{})
}

// NewStyle builds a Style from options, falling back to the default palette.
func NewStyle(o StyleOptions) Style {
	borderColor := colorOr(o.BorderColor, PrimaryColor)
	cellColor := colorOr(o.CellColor, TextColor)
	focusColor := colorOr(o.FocusColor, FocusColor)
	fixedColor := colorOr(o.FixedColor, SubtleColor)

	padding := o.Padding
	if padding < 0 {
		padding = 0
	}

	container := lipgloss.NewStyle().Padding(0, padding+1)
	if border, ok := borderByName(o.Border); ok {
		container = container.Border(border).BorderForeground(borderColor)
	}

	cell := lipgloss.NewStyle().Margin(0, 0, 0, 1).Foreground(cellColor)

	return Style{
		Container:   container,
		Cell:        underline(cell, cellColor),
		FocusedCell: underline(cell, focusColor).Bold(true),
		FixedCell:   underline(cell.Foreground(fixedColor), fixedColor),
		HiddenCell:  cell.Border(lipgloss.HiddenBorder(), false, false, true, false),
		Title: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(SubtleColor),
		Error: lipgloss.NewStyle().
			Foreground(ErrorColor),
	}
}

func colorOr(s string, fallback lipgloss.Color) lipgloss.Color {
	if s == "" {
		return fallback
	}
	return lipgloss.Color(s)
}

// borderByName maps a border name to a lipgloss border. ok is false for
// "none" and unknown names.
func borderByName(name string) (lipgloss.Border, bool) {
	switch name {
	case "", "rounded":
		return lipgloss.RoundedBorder(), true
	case "normal":
		return lipgloss.NormalBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}
