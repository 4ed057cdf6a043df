package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	config := loadConfig()

	logger, closer, err := newLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	defer closer.Close()

	p := tea.NewProgram(
		newModel(config, logger, newRand(config.Seed)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		closer.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
