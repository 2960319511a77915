package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/tui/components/habits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.state == constants.StateForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.session.Reset()
			m.formError = ""
			m.state = constants.StateList
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.habitForm.Apply(m.session)
			if _, err := m.session.Save(); err != nil {
				// Keep the user in the form to correct the draft.
				m.formError = fmt.Sprintf("Failed to save habit: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			if err := m.habits.Load(); err == nil {
				m.habitsPanel.SetHabits(m.habits.Habits())
			}
			m.formError = ""
			m.state = constants.StateList
		case huh.StateAborted:
			m.session.Reset()
			m.formError = ""
			m.state = constants.StateList
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.habits.Delete(m.habitToDelete); err == nil {
					m.habitsPanel.SetHabits(m.habits.Habits())
				}
				m.state = constants.StateList
				m.habitToDelete = 0
				m.habitToDeleteTitle = ""
			case "n", "N", "esc", "q":
				m.state = constants.StateList
				m.habitToDelete = 0
				m.habitToDeleteTitle = ""
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		m.habitsPanel.SetSize(msg.Width-h, msg.Height-4-v)

	case habits.AddHabitMsg:
		m.session.Reset()
		m.habitForm = NewFormModel(m.session)
		m.form = NewHabitForm(m.habitForm)
		m.state = constants.StateForm
		return m, m.form.Init()

	case habits.EditHabitMsg:
		if err := m.session.LoadForEdit(msg.ID); err != nil {
			m.formError = fmt.Sprintf("Failed to load habit: %v", err)
			return m, nil
		}
		m.habitForm = NewFormModel(m.session)
		m.form = NewHabitForm(m.habitForm)
		m.state = constants.StateForm
		return m, m.form.Init()

	case habits.CompleteHabitMsg:
		if err := m.habits.SetCompleted(msg.ID, true); err == nil {
			m.habitsPanel.SetHabits(m.habits.Habits())
		}
		return m, nil

	case habits.UncompleteHabitMsg:
		if err := m.habits.SetCompleted(msg.ID, false); err == nil {
			m.habitsPanel.SetHabits(m.habits.Habits())
		}
		return m, nil

	case habits.DeleteHabitMsg:
		m.habitToDelete = msg.ID
		for _, h := range m.habits.Habits() {
			if h.ID == msg.ID {
				m.habitToDeleteTitle = h.Title
				break
			}
		}
		m.state = constants.StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.habitsPanel, cmd = m.habitsPanel.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
