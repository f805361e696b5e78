package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"deckwav/pkg/wave"
)

const (
	waveRows    = 10 // terminal rows for the detail waveform
	previewRows = 4  // terminal rows for the preview strip
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	masterStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Padding(0, 1)
	numberStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7")).
			Padding(0, 1)
)

func (m Model) View() string {
	if !m.ready {
		return "\nInitializing..."
	}
	if len(m.order) == 0 {
		return fmt.Sprintf("\n %s waiting for players...\n\n %s",
			m.spinner.View(),
			dimStyle.Render("q: quit"))
	}

	panels := make([]string, 0, len(m.order))
	for _, n := range m.order {
		p := m.players[n]
		if m.uiMode == ModeMini {
			panels = append(panels, m.miniPanel(p))
		} else {
			panels = append(panels, m.playerPanel(p))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// playerPanel renders one deck: labels on top, detail waveform, preview
// strip, then the info line.
func (m Model) playerPanel(p *playerView) string {
	inner := m.width - 4 // border and padding
	if inner < 40 {
		inner = 40
	}

	var sb strings.Builder

	title := p.title
	if title == "" {
		title = "Not loaded"
	}
	sb.WriteString(fmt.Sprintf("%s %s\n",
		numberStyle.Render(fmt.Sprintf("%d", p.number)),
		titleStyle.Render(title)))
	if p.artist != "" || p.album != "" {
		sb.WriteString(fmt.Sprintf("%s — %s\n", p.artist, p.album))
	}

	info := fmt.Sprintf("%s %s", p.model, p.address)
	if p.master {
		info += " " + masterStyle.Render("MASTER")
	}
	sb.WriteString(dimStyle.Render(info))
	sb.WriteString("\n")

	sb.WriteString(m.transportLine(p, inner))
	sb.WriteString("\n")

	if p.loading() {
		sb.WriteString(fmt.Sprintf("%s fetching track data...\n", m.spinner.View()))
	} else if frame := p.waveFrame(inner, waveRows*2); frame != nil {
		sb.WriteString(ansiImage(frame))
		sb.WriteString("\n")
	}

	if strip := p.preview.Frame(); strip != nil {
		sb.WriteString(ansiImage(wave.Scale(strip, inner, previewRows*2)))
		sb.WriteString("\n")
	}

	if p.summary.Duration > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf(
			"length %s   peak %d   mean %.1f ±%.1f",
			formatDuration(p.summary.Duration),
			p.summary.Peak, p.summary.Mean, p.summary.StdDev)))
	}

	return m.style.Width(m.width - 2).Render(sb.String())
}

// transportLine shows elapsed time, pitched BPM and the phrase indicator on
// one row.
func (m Model) transportLine(p *playerView, inner int) string {
	elapsed := "--:--"
	if p.summary.Duration > 0 {
		elapsed = formatDuration(time.Duration(p.progress * float64(p.summary.Duration)))
	}

	bpm := "--.--"
	pitch := "+0.00%"
	if p.bpm > 0 {
		bpm = fmt.Sprintf("%.2f", p.bpm*p.pitch)
		pitch = fmt.Sprintf("%+.2f%%", (p.pitch-1)*100)
	}

	bar := ansiImage(wave.Scale(p.beatBar, 20, 4))
	left := fmt.Sprintf("%s  %s  %s BPM %s", elapsed, m.progress.ViewAs(p.progress), bpm, pitch)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", bar)
}

// miniPanel is the compact one-deck-per-line mode.
func (m Model) miniPanel(p *playerView) string {
	title := p.title
	if title == "" {
		title = "Not loaded"
	}
	elapsed := "--:--"
	if p.summary.Duration > 0 {
		elapsed = formatDuration(time.Duration(p.progress * float64(p.summary.Duration)))
	}
	return fmt.Sprintf("%s %s  %s  %s",
		numberStyle.Render(fmt.Sprintf("%d", p.number)),
		titleStyle.Render(title),
		elapsed,
		dimStyle.Render(fmt.Sprintf("beat %d", p.beat)))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	min := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}
