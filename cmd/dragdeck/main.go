package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dragdeck/internal/adapters/memory"
	"dragdeck/internal/adapters/sqlite"
	"dragdeck/internal/adapters/tui"
	"dragdeck/internal/config"
)

func main() {
	store, err := sqlite.Open(config.BoardPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Seed the demo board on first run so there is something to drag.
	board, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(board.Lists) == 0 {
		if err := store.Save(memory.SampleBoard()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	app := tui.NewApp(store)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
