package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/spotui/internal/ui/testutil"
)

func TestApplyBoldGradient(t *testing.T) {
	from, to := lipgloss.Color("#1db954"), lipgloss.Color("#f1a208")

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single cluster", "s"},
		{"word", "spotui"},
		{"combining marks", "Beyoncé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyBoldGradient(tt.text, from, to)
			assert.Equal(t, tt.text, testutil.StripANSI(got))
		})
	}
}

func TestBlendColors(t *testing.T) {
	assert.Len(t, blendColors(5, "#1db954", "#f1a208"), 5)
	assert.Len(t, blendColors(1, "#1db954", "#f1a208"), 1)
}

func TestPanelStyle(t *testing.T) {
	th := T()
	assert.Equal(t, th.BorderFocus, PanelStyle(Focused).GetBorderTopForeground())
	assert.Equal(t, th.Secondary, PanelStyle(Hovered).GetBorderTopForeground())
	assert.Equal(t, th.Border, PanelStyle(Plain).GetBorderTopForeground())
}
