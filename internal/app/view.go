// internal/app/view.go
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/spotui/internal/musicapi"
	"github.com/llehouerou/spotui/internal/state"
	"github.com/llehouerou/spotui/internal/ui/helpbindings"
	"github.com/llehouerou/spotui/internal/ui/render"
	"github.com/llehouerou/spotui/internal/ui/styles"
)

const (
	inputHeight   = 3 // border + one line
	statusHeight  = 1
	minPanelWidth = 20
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	input := m.renderInput()

	bodyH := max(m.Height-inputHeight-statusHeight, 3)
	sideW := max(m.Width/4, minPanelWidth)
	mainW := max(m.Width-sideW, minPanelWidth)

	side := m.renderPlaylists(sideW, bodyH)
	body := lipgloss.JoinHorizontal(lipgloss.Top, side, m.renderMain(mainW, bodyH))

	return lipgloss.JoinVertical(lipgloss.Left, input, body, m.renderStatus())
}

func (m Model) renderInput() string {
	s := m.State
	emph := styles.Plain
	if s.Active == state.BlockInput {
		emph = styles.Focused
	}
	t := styles.T()
	title := styles.ApplyBoldGradient("spotui", t.Primary, t.Secondary)
	innerW := max(m.Width-2, 1)
	text := render.Truncate(s.Input, max(innerW-lipgloss.Width(title)-1, 0))
	return styles.PanelStyle(emph).Width(innerW).Render(title + " " + text)
}

// renderMain picks what the right-hand area shows: overlays for the help,
// error and device screens, the search grid, or the song table.
func (m Model) renderMain(w, h int) string {
	s := m.State
	switch s.Active {
	case state.BlockHelpMenu:
		return panel("Help", helpbindings.Lines(m.Keys), w, h, styles.Focused)
	case state.BlockAPIError:
		return m.renderError(w, h)
	case state.BlockSelectDevice:
		return panel("Devices", m.deviceLines(w-2), w, h, styles.Focused)
	case state.BlockSearchResults:
		return m.renderSearch(w, h)
	case state.BlockInput, state.BlockMyPlaylists, state.BlockSongTable:
	}
	return m.renderSongTable(w, h)
}

func (m Model) renderPlaylists(w, h int) string {
	s := m.State
	emph := styles.Plain
	if s.Active == state.BlockMyPlaylists {
		emph = styles.Focused
	}
	innerW := w - 2
	var lines []string
	sel := s.Playlists.Selection.Or(-1)
	for i, p := range s.Playlists.Items {
		lines = append(lines, listRow(p.Name, innerW, i == sel, emph == styles.Focused))
	}
	if !s.Playlists.Loaded {
		lines = append(lines, styles.T().S().Subtle.Render("loading..."))
	}
	return panel("Playlists", lines, w, h, emph)
}

// songTableRows is the number of table rows that fit in the main area.
func (m Model) songTableRows() int {
	bodyH := max(m.Height-inputHeight-statusHeight, 3)
	return max(bodyH-4, 1) // border, title, header
}

func (m Model) renderSongTable(w, h int) string {
	s := m.State
	emph := styles.Plain
	if s.Active == state.BlockSongTable {
		emph = styles.Focused
	}
	innerW := w - 2
	durW := 6
	rest := max(innerW-durW-3, 3)
	titleW, artistW := rest*2/5, rest*3/10
	albumW := max(rest-titleW-artistW, 1)

	row := func(title, artist, album, dur string) string {
		return render.TruncateAndPad(title, titleW) + " " +
			render.TruncateAndPad(artist, artistW) + " " +
			render.TruncateAndPad(album, albumW) + " " +
			render.TruncateAndPad(dur, durW)
	}

	st := styles.T().S()
	lines := []string{st.Muted.Render(row("Title", "Artist", "Album", "Length"))}
	start, end := m.songView.VisibleRange(len(s.SongTable), m.songTableRows())
	for i := start; i < end; i++ {
		t := s.SongTable[i]
		line := row(t.Name, t.ArtistNames(), t.Album, formatDuration(t.Duration))
		if !t.Playable() {
			line = st.Subtle.Render(row("(unavailable)", "", "", ""))
		}
		switch {
		case i == s.SelectedSong && emph == styles.Focused:
			line = st.Cursor.Render(line)
		case s.NowPlaying != nil && t.ID != "" && s.NowPlaying.ID == t.ID:
			line = st.Playing.Render(line)
		}
		lines = append(lines, line)
	}
	return panel("Songs", lines, w, h, emph)
}

func (m Model) renderSearch(w, h int) string {
	s := m.State
	r := &s.Search
	leftW := w / 2
	rightW := w - leftW
	topH := h / 2
	bottomH := h - topH

	focused, hasFocus := r.Focused()
	emphasis := func(p state.Panel) styles.Emphasis {
		if s.Active != state.BlockSearchResults {
			return styles.Plain
		}
		if hasFocus && focused == p {
			return styles.Focused
		}
		if r.Hovered == p {
			return styles.Hovered
		}
		return styles.Plain
	}

	songs := searchPanel("Songs", &r.Tracks, func(t musicapi.Track) string {
		return t.Name + " - " + t.ArtistNames()
	}, leftW, topH, emphasis(state.PanelSongs))
	artists := searchPanel("Artists", &r.Artists, func(a musicapi.Artist) string {
		return fmt.Sprintf("%s (%s followers)", a.Name, humanize.Comma(int64(a.Followers)))
	}, rightW, topH, emphasis(state.PanelArtists))
	albums := searchPanel("Albums", &r.Albums, func(a musicapi.Album) string {
		return a.Name + " - " + strings.Join(a.Artists, ", ")
	}, leftW, bottomH, emphasis(state.PanelAlbums))
	playlists := searchPanel("Playlists", &r.Playlists, func(p musicapi.Playlist) string {
		return fmt.Sprintf("%s (%s tracks)", p.Name, humanize.Comma(int64(p.TrackCount)))
	}, rightW, bottomH, emphasis(state.PanelPlaylists))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, songs, artists),
		lipgloss.JoinHorizontal(lipgloss.Top, albums, playlists),
	)
}

func searchPanel[T any](title string, l *state.List[T], label func(T) string, w, h int, emph styles.Emphasis) string {
	innerW := w - 2
	var lines []string
	if !l.Loaded {
		lines = append(lines, styles.T().S().Subtle.Render("no results"))
	}
	sel := l.Selection.Or(-1)
	for i, item := range l.Items {
		lines = append(lines, listRow(label(item), innerW, i == sel, emph == styles.Focused))
	}
	return panel(title, lines, w, h, emph)
}

func (m Model) deviceLines(innerW int) []string {
	s := m.State
	if !s.Devices.Loaded {
		return []string{styles.T().S().Subtle.Render("no devices found; open the player on a device and press d again")}
	}
	sel := s.Devices.Selection.Or(-1)
	var lines []string
	for i, d := range s.Devices.Items {
		label := fmt.Sprintf("%s (%s, %d%%)", d.Name, d.Type, d.Volume)
		if d.ID == s.DeviceID {
			label = "* " + label
		}
		lines = append(lines, listRow(label, innerW, i == sel, true))
	}
	return lines
}

func (m Model) renderError(w, h int) string {
	st := styles.T().S()
	msg := lipgloss.NewStyle().Width(max(w-2, 1)).Render(st.Error.Render(render.Sanitize(m.State.APIError)))
	hint := st.Muted.Render("esc: back, d: select device")
	return panel("Error", append(strings.Split(msg, "\n"), "", hint), w, h, styles.Focused)
}

func (m Model) renderStatus() string {
	s := m.State
	st := styles.T().S()

	left := st.Muted.Render("nothing playing")
	if s.NowPlaying != nil {
		left = st.Playing.Render(render.Sanitize("> " + s.NowPlaying.Name + " - " + s.NowPlaying.ArtistNames()))
	}
	if s.APIError != "" && s.Active != state.BlockAPIError {
		left += "  " + st.Error.Render(render.Sanitize(s.APIError))
	}

	right := st.Warning.Render("no device (d)")
	if d, ok := currentDevice(s); ok {
		right = st.Base.Render(d.Name)
	} else if s.DeviceID != "" {
		right = st.Base.Render(s.DeviceID)
	}
	if m.inFlight {
		right = m.Spinner.View() + " " + right
	}

	left = ansi.Truncate(left, max(m.Width-lipgloss.Width(right)-1, 0), "…")
	return render.Row(left, right, m.Width)
}

func currentDevice(s *state.State) (musicapi.Device, bool) {
	for _, d := range s.Devices.Items {
		if d.ID == s.DeviceID && d.ID != "" {
			return d, true
		}
	}
	return musicapi.Device{}, false
}

// panel draws a bordered box of exactly w x h cells with a title line.
func panel(title string, lines []string, w, h int, emph styles.Emphasis) string {
	innerW, innerH := max(w-2, 1), max(h-2, 1)
	st := styles.T().S()

	titleStyle := st.Muted
	if emph == styles.Focused {
		titleStyle = st.Title
	}
	body := []string{titleStyle.Render(render.Truncate(title, innerW))}
	for _, l := range lines {
		if len(body) >= innerH {
			break
		}
		body = append(body, ansi.Truncate(l, innerW, "…"))
	}

	return styles.PanelStyle(emph).
		Width(innerW).
		Height(innerH).
		MaxHeight(h).
		Render(strings.Join(body, "\n"))
}

func listRow(label string, width int, selected, active bool) string {
	st := styles.T().S()
	text := render.TruncateAndPad(label, width)
	switch {
	case selected && active:
		return st.Cursor.Render(text)
	case selected:
		return st.Title.Render(text)
	}
	return st.Base.Render(text)
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
