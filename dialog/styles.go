package dialog

import (
	"charm.land/lipgloss/v2"

	"github.com/dlgdev/dlg/internal/ui/styles"
)

// Style functions that return styles based on the current theme.
// These are functions instead of variables to pick up theme changes.

// PanelStyle wraps the dialog panel (the "content" area over the backdrop)
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)
}

// TitleStyle for the confirm dialog title
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

// MessageStyle for the dialog message text
func MessageStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal)
}

// ButtonStyle for unfocused buttons
func ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

// ButtonFocusedStyle for the focused button
func ButtonFocusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Accent)
}

// HelpStyle for the key hints at the bottom of a panel
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginTop(1)
}
