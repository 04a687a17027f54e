package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateNameEntry handles the name entry screen
func (m Model) updateNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if len(m.nameInput) > 0 && m.ws != nil {
			if err := m.ws.Join(m.roomID, m.nameInput); err != nil {
				m.errLine = err.Error()
				return m, nil
			}
			// the server answers with joined_room, which flips the view
		}
		return m, nil

	case "backspace":
		if len(m.nameInput) > 0 {
			m.nameInput = m.nameInput[:len(m.nameInput)-1]
		}

	default:
		if len(msg.String()) == 1 && len(m.nameInput) < 20 {
			m.nameInput += msg.String()
		}
	}

	return m, nil
}

// viewConnecting renders the connection screen
func (m Model) viewConnecting() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("🃏 SKRYNKY"),
		subtitleStyle.Render("Connecting to server..."),
	)
	if m.errLine != "" {
		content = lipgloss.JoinVertical(
			lipgloss.Center,
			content,
			errorStyle.Render(m.errLine),
			instructionStyle.Render("Press ENTER to retry  •  ESC to quit"),
		)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewNameEntry renders the name entry screen
func (m Model) viewNameEntry() string {
	title := titleStyle.Render("🃏 SKRYNKY")
	subtitle := subtitleStyle.Render("Collect the boxes, four of a rank")

	promptText := lipgloss.NewStyle().
		Foreground(secondaryColor).
		Margin(2, 0).
		Render("Enter your name:")

	inputText := m.nameInput
	if len(inputText) == 0 {
		inputText = mutedStyle.Render("type here...")
	} else {
		inputText = highlightStyle.Render(inputText) + cursorStyle.Render("▊")
	}
	inputField := inputBoxStyle.Render(inputText)

	mainContent := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		subtitle,
		"\n",
		promptText,
		inputField,
	)
	if m.errLine != "" {
		mainContent = lipgloss.JoinVertical(lipgloss.Center, mainContent, errorStyle.Render(m.errLine))
	}

	instructions := instructionStyle.Render(
		"Press " + highlightStyle.Render("ENTER") + " to join  •  " +
			mutedStyle.Render("ESC to quit"))

	centeredMain := lipgloss.Place(m.width, m.height-5, lipgloss.Center, lipgloss.Center, mainContent)
	bottomInstructions := lipgloss.Place(m.width, 3, lipgloss.Center, lipgloss.Bottom, instructions)

	return centeredMain + "\n" + bottomInstructions
}
