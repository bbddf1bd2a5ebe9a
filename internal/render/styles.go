// Package render formats the usage report for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

// Color definitions for the console report.
var (
	Primary = lipgloss.Color("205") // Pink
	Subtle  = lipgloss.Color("240") // Gray

	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow

	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
)

// TitleStyle is used for the report heading.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// SectionStyle is used for section headings.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// LabelStyle styles row labels.
var LabelStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// ValueStyle styles numeric values.
var ValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// WarnStyle highlights degraded or skipped data.
var WarnStyle = lipgloss.NewStyle().
	Foreground(Warning)

// MutedStyle renders secondary notes.
var MutedStyle = lipgloss.NewStyle().
	Foreground(Subtle)
