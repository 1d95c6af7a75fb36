package progress

import (
	tui "github.com/charmbracelet/lipgloss"
)

// Style collects the terminal styles applied to the segments of the
// status line.  The zero value renders every segment as plain text.
type Style struct {
	// Description is applied to the label set with the Description option.
	Description tui.Style

	// Bar is applied to the bar segment, including the enclosing pipes.
	Bar tui.Style

	// Counts is applied to the count and percentage segment.
	Counts tui.Style

	// Stats is applied to the elapsed / remaining / rate segment.
	Stats tui.Style
}

// DefaultColors is a ready-made colour scheme for the status line.  Pass
// it to WithStyle for a coloured meter; bars render plain text by
// default.
var DefaultColors = Style{
	Description: tui.NewStyle().Bold(true),
	Bar:         tui.NewStyle().Foreground(tui.Color("#00d787")),
	Counts:      tui.NewStyle().Foreground(tui.Color("#00afd7")),
	Stats:       tui.NewStyle().Faint(true),
}
