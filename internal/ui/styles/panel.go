package styles

import "github.com/charmbracelet/lipgloss"

// Emphasis is how strongly a panel stands out.
type Emphasis int

const (
	Plain   Emphasis = iota
	Hovered          // outline cursor, no item navigation
	Focused          // receives item navigation
)

// PanelStyle returns the bordered panel style for an emphasis level.
func PanelStyle(e Emphasis) lipgloss.Style {
	t := T()
	style := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())
	switch e {
	case Focused:
		return style.BorderForeground(t.BorderFocus)
	case Hovered:
		return style.BorderForeground(t.Secondary)
	case Plain:
	}
	return style.BorderForeground(t.Border)
}
