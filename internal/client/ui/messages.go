package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/skrynky/internal/client"
	"github.com/yourusername/skrynky/internal/protocol"
)

// connectedMsg is sent when the connection is established
type connectedMsg struct {
	ws *client.WSClient
}

// connectErrorMsg is sent when the connection attempt fails
type connectErrorMsg struct {
	err error
}

// serverMsg wraps one decoded message from the server
type serverMsg struct {
	msg *protocol.Message
}

// disconnectedMsg is sent when the server connection goes away
type disconnectedMsg struct{}

// connectCmd dials the server
func connectCmd(serverURL string) tea.Cmd {
	return func() tea.Msg {
		ws, err := client.NewWSClient(serverURL)
		if err != nil {
			return connectErrorMsg{err: err}
		}
		return connectedMsg{ws: ws}
	}
}

// listenCmd waits for the next server message
func listenCmd(ws *client.WSClient) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ws.Receive()
		if !ok {
			return disconnectedMsg{}
		}
		return serverMsg{msg: msg}
	}
}
