package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output, tuned for dark terminals.
const (
	// colorPrimary is purple, used for the tool name and section titles.
	colorPrimary = lipgloss.Color("#7C3AED")

	// colorMuted is gray, used for subtitles and secondary text.
	colorMuted = lipgloss.Color("#6B7280")

	// colorHighlight is blue, used for command and file references.
	colorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// titleStyle is for the tool name in help output.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// subtitleStyle is for descriptions and section headers in help output.
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// cmdStyle is for inline command examples.
	cmdStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)
)
