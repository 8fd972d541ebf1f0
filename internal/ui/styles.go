package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the digest.
var (
	colorTitle     = lipgloss.Color("14")  // Cyan
	colorHeader    = lipgloss.Color("12")  // Blue
	colorMuted     = lipgloss.Color("241") // Gray
	colorBody      = lipgloss.Color("255") // White
	colorWarning   = lipgloss.Color("11")  // Yellow
	colorLinkLabel = lipgloss.Color("12")  // Blue
)

// Header style for the digest banner.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHeader)

// Title style for item headlines.
var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorTitle)

// Meta style for the "domain | date" line.
var Meta = lipgloss.NewStyle().
	Foreground(colorMuted)

// Body style for description text.
var Body = lipgloss.NewStyle().
	Foreground(colorBody)

// LinkLabel style for the "Read more:" prefix.
var LinkLabel = lipgloss.NewStyle().
	Foreground(colorLinkLabel)

// Rule style for the separator between items.
var Rule = lipgloss.NewStyle().
	Foreground(colorMuted)

// Warning style for the empty-digest message.
var Warning = lipgloss.NewStyle().
	Foreground(colorWarning)

// SpinnerMessage style for the fetch progress text.
var SpinnerMessage = lipgloss.NewStyle().
	Foreground(colorTitle)
