package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box with bullet points and asks a yes/no
// question. Only "y" or "yes" (any case) confirms; EOF declines.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, question string) bool {
	p := NewPrinter(out)

	lines := []string{"", WarningTitleStyle.Render(" " + WarningMarker + "  WARNING  ─  " + title), ""}
	for _, warning := range warnings {
		lines = append(lines, ValueStyle.Render(" • "+warning))
	}
	lines = append(lines, "")

	p.Println(boxStyle(WarningColor, p.Width()).Render(strings.Join(lines, "\n")))

	prompt := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	p.Print(prompt.Render(question + " [y/N]: "))

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}

	p.PrintMuted("  Operation cancelled.")
	return false
}

// ConfirmOverwrite asks before replacing an existing config file
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	return Confirm(in, out,
		"CONFIG FILE EXISTS",
		[]string{
			"A configuration file already exists at " + path,
			"Custom presets and style preferences in it will be lost",
		},
		"Overwrite it with the defaults?",
	)
}
