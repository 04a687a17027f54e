package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/skrynky/internal/client"
	"github.com/yourusername/skrynky/internal/protocol"
)

// ViewState represents the current view in the TUI
type ViewState int

const (
	ViewConnecting ViewState = iota
	ViewNameEntry
	ViewTable
)

// Model is the main Bubble Tea model
type Model struct {
	viewState ViewState
	ws        *client.WSClient

	serverURL string
	roomID    string
	myName    string

	nameInput string
	input     string

	state    *protocol.StatePayload
	prompt   string // what the server is waiting on from us, if anything
	gameOver *protocol.GameOverPayload
	errLine  string

	width  int
	height int
}

// NewModel creates the model; connection starts in Init
func NewModel(serverURL, roomID string) Model {
	return Model{
		viewState: ViewConnecting,
		serverURL: serverURL,
		roomID:    roomID,
		width:     80,
		height:    24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return connectCmd(m.serverURL)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.viewState {
		case ViewNameEntry:
			return m.updateNameEntry(msg)
		case ViewTable:
			return m.updateTable(msg)
		default:
			switch msg.String() {
			case "ctrl+c", "esc":
				return m, tea.Quit
			case "enter":
				// retry after a failed dial
				if m.ws == nil {
					m.errLine = ""
					return m, connectCmd(m.serverURL)
				}
			}
		}
		return m, nil

	case connectedMsg:
		m.ws = msg.ws
		m.viewState = ViewNameEntry
		return m, listenCmd(m.ws)

	case connectErrorMsg:
		m.errLine = fmt.Sprintf("connection failed: %v", msg.err)
		return m, nil

	case disconnectedMsg:
		m.errLine = "connection lost"
		m.viewState = ViewConnecting
		m.ws = nil
		return m, nil

	case serverMsg:
		return m.handleServerMessage(msg.msg)
	}

	return m, nil
}

// View renders the current view
func (m Model) View() string {
	switch m.viewState {
	case ViewConnecting:
		return m.viewConnecting()
	case ViewNameEntry:
		return m.viewNameEntry()
	case ViewTable:
		return m.viewTable()
	}
	return ""
}

// handleServerMessage applies one server message to the model
func (m Model) handleServerMessage(msg *protocol.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case protocol.MsgJoinedRoom:
		var payload protocol.JoinedRoomPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.roomID = payload.RoomID
			m.myName = payload.Name
			m.viewState = ViewTable
			m.errLine = ""
		}

	case protocol.MsgUpdateState:
		var payload protocol.StatePayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.state = &payload
			if payload.GameStarted {
				m.gameOver = nil
			}
			// a state update means the previous exchange resolved unless the
			// server reminds us otherwise right after
			if payload.CurrentTurn == m.myName {
				m.prompt = "Your turn: ask <player> <rank>"
			} else if m.prompt != "" && !strings.HasPrefix(m.prompt, "Answer") &&
				!strings.HasPrefix(m.prompt, "Guess") {
				m.prompt = ""
			}
		}

	case protocol.MsgAskResponseNeeded:
		var payload protocol.AskResponseNeededPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.prompt = fmt.Sprintf("Answer %s: do you hold any %ss? (yes/no)",
				payload.AskingPlayer, payload.CardRank)
		}

	case protocol.MsgGuessCountNeeded:
		var payload protocol.GuessCountNeededPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.prompt = fmt.Sprintf("Guess how many %ss %s holds: count <n>",
				payload.CardRank, payload.TargetPlayer)
		}

	case protocol.MsgGuessSuitsNeeded:
		var payload protocol.GuessSuitsNeededPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.prompt = fmt.Sprintf("Name the %d suit(s) of %s's %ss: suits <s> <s> ...",
				payload.Count, payload.TargetPlayer, payload.CardRank)
		}

	case protocol.MsgGameOver:
		var payload protocol.GameOverPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.gameOver = &payload
			m.prompt = ""
		}

	case protocol.MsgInviteNewGame:
		var payload protocol.InviteNewGamePayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			if payload.IsAdmin {
				m.prompt = "Waiting for players to accept the new game"
			} else {
				m.prompt = fmt.Sprintf("%s proposes a new game: accept", payload.AdminName)
			}
		}

	case protocol.MsgError:
		var payload protocol.ErrorPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.errLine = payload.Message
		}
	}

	if m.ws != nil {
		return m, listenCmd(m.ws)
	}
	return m, nil
}
