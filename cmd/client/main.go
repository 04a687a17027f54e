package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/skrynky/internal/client/ui"
)

func main() {
	serverURL := flag.String("server", "ws://localhost:8765/ws", "WebSocket server URL")
	roomID := flag.String("room", "", "Room ID to join (empty creates a new room)")
	flag.Parse()

	p := tea.NewProgram(ui.NewModel(*serverURL, *roomID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
