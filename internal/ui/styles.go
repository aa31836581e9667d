package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/travelwing/travelwing/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	// Draft Box for rendered email drafts
	StyleDraftBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// StatusStyle maps a flight status to its display style.
func StatusStyle(status models.FlightStatus) lipgloss.Style {
	switch status {
	case models.StatusCancelled, models.StatusDiverted:
		return StyleError
	case models.StatusDelayed:
		return StyleWarning
	case models.StatusLanded:
		return StyleSuccess
	default:
		return StyleText
	}
}

// PriorityStyle maps an event priority to its display style.
func PriorityStyle(priority models.EventPriority) lipgloss.Style {
	switch priority {
	case models.PriorityCritical:
		return StyleError
	case models.PriorityImportant:
		return StyleWarning
	default:
		return StyleSubtle
	}
}

// ConflictStyle maps a conflict classification to its display style.
func ConflictStyle(status models.ConflictStatus) lipgloss.Style {
	if status == models.ConflictAtRisk {
		return StyleError
	}
	return StyleSuccess
}
