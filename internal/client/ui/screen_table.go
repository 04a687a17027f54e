package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateTable handles the game table screen: a single command line drives
// every action.
func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		line := strings.TrimSpace(m.input)
		m.input = ""
		if line != "" {
			m.errLine = ""
			m.runCommand(line)
		}
		return m, nil

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case " ", "space":
		m.input += " "

	default:
		if len(msg.String()) == 1 {
			m.input += msg.String()
		}
	}

	return m, nil
}

// runCommand parses and sends one table command
func (m *Model) runCommand(line string) {
	if m.ws == nil {
		m.errLine = "not connected"
		return
	}

	fields := strings.Fields(line)
	var err error
	switch strings.ToLower(fields[0]) {
	case "start":
		err = m.ws.StartGame()

	case "ask":
		if len(fields) != 3 {
			m.errLine = "usage: ask <player> <rank>"
			return
		}
		err = m.ws.AskCard(fields[1], strings.ToUpper(fields[2]))

	case "yes":
		err = m.ws.AskResponse(true)

	case "no":
		err = m.ws.AskResponse(false)

	case "count":
		if len(fields) != 2 {
			m.errLine = "usage: count <n>"
			return
		}
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			m.errLine = "usage: count <n>"
			return
		}
		err = m.ws.GuessCount(n)

	case "suits":
		if len(fields) < 2 {
			m.errLine = "usage: suits <suit> [suit...]  (h/d/c/s or symbols)"
			return
		}
		err = m.ws.GuessSuits(fields[1:])

	case "say":
		if len(fields) < 2 {
			m.errLine = "usage: say <message>"
			return
		}
		err = m.ws.Chat(strings.TrimSpace(strings.TrimPrefix(line, fields[0])))

	case "new":
		err = m.ws.InviteNewGame()

	case "accept":
		err = m.ws.AcceptNewGame()

	default:
		m.errLine = "commands: start, ask, yes, no, count, suits, say, new, accept"
		return
	}

	if err != nil {
		m.errLine = err.Error()
	}
}

// renderCard colors hearts and diamonds red
func renderCard(card string) string {
	if strings.HasSuffix(card, "♥") || strings.HasSuffix(card, "♦") {
		return redCardStyle.Render(card)
	}
	return card
}

// viewTable renders the game table
func (m Model) viewTable() string {
	header := titleStyle.Render(fmt.Sprintf("🃏 SKRYNKY · room %s", m.roomID))

	var lines []string
	if m.state == nil {
		lines = append(lines, mutedStyle.Render("waiting for room state..."))
	} else {
		for _, p := range m.state.Players {
			marker := "  "
			name := p.Name
			if p.IsTurn {
				marker = turnStyle.Render("▶ ")
				name = turnStyle.Render(name)
			}
			if p.Name == m.state.RoomAdmin {
				name += mutedStyle.Render(" (admin)")
			}
			boxes := ""
			if p.CollectedBoxes > 0 {
				boxes = highlightStyle.Render(
					fmt.Sprintf("  boxes: %d %v", p.CollectedBoxes, p.CollectedSets))
			}
			lines = append(lines, marker+name+boxes)
		}
		lines = append(lines, "")
		if m.state.GameStarted {
			lines = append(lines, mutedStyle.Render(
				fmt.Sprintf("deck: %d cards  •  turn: %s", m.state.DeckSize, m.state.CurrentTurn)))
		} else {
			lines = append(lines, mutedStyle.Render("game not started"))
		}
	}
	tableBox := tableBoxStyle.Render(strings.Join(lines, "\n"))

	// last few history lines
	var historyLines []string
	if m.state != nil {
		history := m.state.History
		if len(history) > 8 {
			history = history[len(history)-8:]
		}
		for _, h := range history {
			historyLines = append(historyLines, mutedStyle.Render("· "+h.Message))
		}
	}
	historyBlock := strings.Join(historyLines, "\n")

	// my hand
	hand := mutedStyle.Render("(no cards)")
	if m.state != nil && len(m.state.MyHand) > 0 {
		cards := make([]string, len(m.state.MyHand))
		for i, c := range m.state.MyHand {
			cards[i] = renderCard(c)
		}
		hand = strings.Join(cards, "  ")
	}
	handBox := handBoxStyle.Render("Hand: " + hand)

	var statusParts []string
	if m.gameOver != nil {
		statusParts = append(statusParts, highlightStyle.Render(
			fmt.Sprintf("GAME OVER! winner(s): %v", m.gameOver.Winners)))
	}
	if m.prompt != "" {
		statusParts = append(statusParts, promptStyle.Render(m.prompt))
	}
	if m.errLine != "" {
		statusParts = append(statusParts, errorStyle.Render(m.errLine))
	}
	status := strings.Join(statusParts, "\n")

	inputLine := "> " + m.input + cursorStyle.Render("▊")
	help := instructionStyle.Render("start · ask <player> <rank> · yes/no · count <n> · suits h s · say <msg> · new · accept · ESC quits")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tableBox,
		historyBlock,
		handBox,
		status,
		inputLine,
		help,
	)
}
