package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"deckwav/internal/config"
	"deckwav/internal/prolink"
	"deckwav/internal/ui"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "deckwav")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width, height = 80, 24
	}

	source := prolink.NewDemoSource(cfg.DemoBPM, cfg.DemoTrackSeconds)

	p := tea.NewProgram(ui.NewModel(cfg, source, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
