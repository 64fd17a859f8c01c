package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
}

// FooterTheme groups styles used by the status line under the panes.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles the framed calendar and task panes.
type PanelTheme struct {
	Frame       lipgloss.Style
	ActiveFrame lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Panel: PanelTheme{
			Frame:       frame,
			ActiveFrame: frame.BorderForeground(lipgloss.Color("212")),
		},
	}
}
