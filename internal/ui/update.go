package ui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"deckwav/internal/prolink"
)

// tickMsg drives the scroll refresh loop.
type tickMsg time.Time

// replyMsg wraps one asynchronous answer from the data service.
type replyMsg struct {
	reply prolink.Reply
}

// Update is the main update function for the bubbletea loop. Everything
// that mutates view state runs here, so a data reply that replaces a
// composite always completes before the next tick renders from it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.source.Close()
			return m, tea.Quit
		case "m":
			if m.uiMode == ModeFull {
				m.uiMode = ModeMini
			} else {
				m.uiMode = ModeFull
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		for _, p := range m.players {
			p.advanceScroll()
		}
		return m, m.tick()

	case replyMsg:
		return m.handleReply(msg.reply)
	}

	return m, nil
}

// handleReply dispatches one data-service answer to its player view. The
// reply kinds form a closed set; anything track-scoped is epoch-checked and
// silently dropped when stale.
func (m Model) handleReply(reply prolink.Reply) (tea.Model, tea.Cmd) {
	switch r := reply.(type) {

	case prolink.StatusReply:
		p, ok := m.players[r.Player]
		if !ok {
			p = newPlayerView(r.Player, m.cfg)
			m.players[r.Player] = p
			m.order = append(m.order, r.Player)
			sort.Ints(m.order)
		}
		p.applyStatus(r)
		if r.TrackID != 0 && r.TrackID != p.trackID {
			epoch := p.startTrack(r.TrackID)
			m.source.RequestTrack(r.Player, r.Slot, r.TrackID, epoch)
		}

	case prolink.MetadataReply:
		if p := m.trackTarget(r.Player, r.Epoch); p != nil {
			p.setMetadata(r.Title, r.Artist, r.Album)
		}

	case prolink.WaveformReply:
		if p := m.trackTarget(r.Player, r.Epoch); p != nil {
			p.setWaveformData(r.Data)
		}

	case prolink.PreviewReply:
		if p := m.trackTarget(r.Player, r.Epoch); p != nil {
			p.setPreviewData(r.Data)
		}

	case prolink.BeatgridReply:
		if p := m.trackTarget(r.Player, r.Epoch); p != nil {
			p.setBeatgridData(r.Data)
		}

	case prolink.ArtworkReply:
		// No artwork surface in the terminal layout.
	}

	return m, m.waitForReply()
}

// trackTarget resolves the player a track-scoped reply belongs to. Replies
// for unknown players or for an earlier track epoch return nil and the
// payload is dropped.
func (m Model) trackTarget(number int, epoch uint64) *playerView {
	p, ok := m.players[number]
	if !ok || p.epoch != epoch {
		return nil
	}
	return p
}
