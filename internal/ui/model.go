package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deckwav/internal/config"
	"deckwav/internal/prolink"
)

type UIMode int

const (
	ModeFull UIMode = iota
	ModeMini
)

// Model is the bubbletea model for the whole monitor. Player views are
// created on the first status reply naming them and torn down never; each
// owns its own scroll clock and composited image.
type Model struct {
	cfg    config.Config
	source prolink.Source

	players map[int]*playerView
	order   []int

	spinner  spinner.Model
	progress progress.Model
	style    lipgloss.Style

	width  int
	height int
	ready  bool
	uiMode UIMode
}

func NewModel(cfg config.Config, source prolink.Source, width, height int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Model{
		cfg:      cfg,
		source:   source,
		players:  make(map[int]*playerView),
		spinner:  s,
		progress: p,
		style:    style,
		width:    width,
		height:   height,
		ready:    width > 0 && height > 0,
		uiMode:   ModeFull,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.tick(),
		m.waitForReply(),
	)
}

// tick schedules the next refresh of the scroll loop.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForReply blocks on the data service until the next reply arrives.
func (m Model) waitForReply() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-m.source.Replies()
		if !ok {
			return nil
		}
		return replyMsg{reply: r}
	}
}
