package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quizforge/mcq-server/config"
	"github.com/quizforge/mcq-server/form"
)

func main() {
	cfg := config.Load()

	client := form.NewClient(cfg.ServerURL)
	p := tea.NewProgram(form.NewModel(client))
	if _, err := p.Run(); err != nil {
		log.Fatalf("form exited: %v", err)
	}
}
