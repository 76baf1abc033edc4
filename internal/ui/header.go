package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line of a header or result box
type Detail struct {
	Key   string
	Value string
}

// Header is the banner printed before the box runs
type Header struct {
	Title   string   // e.g. "Enter code"
	Command string   // e.g. "segbox --preset hello"
	Details []Detail // e.g. template and markers
	Width   int
}

// NewHeader creates a new header sized to the terminal
func NewHeader(title, command string, details []Detail) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)

	content := top
	if len(h.Details) > 0 {
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", width-6))
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, renderDetails(h.Details, "  "))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

func renderDetails(details []Detail, indent string) string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, KeyStyle.Render(indent+d.Key+":")+" "+ValueStyle.Render(d.Value))
	}
	return strings.Join(lines, "\n")
}
