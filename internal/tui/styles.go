package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styles used in the TUI
type Styles struct {
	App         lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	ViewTitle   lipgloss.Style

	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowMuted    lipgloss.Style

	StatusBar     lipgloss.Style
	StatusDraft   lipgloss.Style
	StatusDone    lipgloss.Style
	StatusWarning lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")  // Purple
	accent := lipgloss.Color("212")  // Pink
	muted := lipgloss.Color("240")   // Gray
	success := lipgloss.Color("82")  // Green
	warning := lipgloss.Color("214") // Orange

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		RowSelected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		RowMuted:  lipgloss.NewStyle().Foreground(muted),

		StatusBar:     lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		StatusDraft:   lipgloss.NewStyle().Foreground(warning),
		StatusDone:    lipgloss.NewStyle().Foreground(success),
		StatusWarning: lipgloss.NewStyle().Foreground(warning),
	}
}
