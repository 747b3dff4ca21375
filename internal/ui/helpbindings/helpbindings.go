// Package helpbindings renders the keybinding reference shown in the help menu.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/ui/render"
	"github.com/llehouerou/spotui/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"navigation",
	"input",
	"playlists",
	"song_table",
	"search",
	"devices",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":     "Global",
	"navigation": "Navigation",
	"input":      "Search Input",
	"playlists":  "Playlists",
	"song_table": "Songs",
	"search":     "Search Results",
	"devices":    "Devices",
}

// Lines returns the help content grouped by category. Keys come from r so
// user overrides are shown; descriptions come from the default table.
func Lines(r *keymap.Resolver) []string {
	st := styles.T().S()
	keyStyle := st.Title
	headerStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)

	type row struct{ keys, desc string }
	groups := make(map[string][]row)
	maxKeyWidth := 0
	for _, ctx := range categoryOrder {
		for _, b := range keymap.ByContext(ctx) {
			keys := strings.Join(r.KeysFor(b.Action), ", ")
			if keys == "" {
				continue
			}
			maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keys))
			groups[ctx] = append(groups[ctx], row{keys, b.Description})
		}
	}

	var lines []string
	for _, ctx := range categoryOrder {
		rows := groups[ctx]
		if len(rows) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			headerStyle.Render(categoryLabels[ctx]),
			st.Subtle.Render(render.Separator(maxKeyWidth + 15)))
		for _, rw := range rows {
			padded := rw.keys + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(rw.keys))
			lines = append(lines, keyStyle.Render(padded)+"  "+st.Base.Render(rw.desc))
		}
	}
	return lines
}
