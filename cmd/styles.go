package cmd

import (
	"charm.land/lipgloss/v2"
)

// Color palette — kid-friendly, bright but not garish
var (
	colPrimary = lipgloss.Color("#8B5CF6") // Vivid Purple
	colAccent  = lipgloss.Color("#F97316") // Orange
	colSuccess = lipgloss.Color("#22C55E") // Green
	colError   = lipgloss.Color("#F43F5E") // Rose
	colText    = lipgloss.Color("#F8FAFC") // White
	colTextDim = lipgloss.Color("#94A3B8") // Slate
	colBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleLaneActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colAccent)

	styleLane = lipgloss.NewStyle().
			Foreground(colText)

	styleDim = lipgloss.NewStyle().
			Foreground(colTextDim)

	stylePerfect = lipgloss.NewStyle().
			Foreground(colSuccess)

	styleMiss = lipgloss.NewStyle().
			Foreground(colError)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(0, 2)
)
