package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ddy/habitpulse/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateForm:
		content = m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.formError), content)
		}
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.habitsPanel.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("habitpulse"),
		content,
		m.help.View(m),
	)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q? This cannot be undone.", m.habitToDeleteTitle)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
