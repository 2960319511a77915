package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/habitlist"
	"github.com/ddy/habitpulse/internal/repository"
	"github.com/ddy/habitpulse/internal/session"
	"github.com/ddy/habitpulse/internal/tui/components/habits"
)

type Model struct {
	repo    *repository.HabitRepository
	session *session.Session
	habits  *habitlist.List

	state       constants.SessionState
	keys        KeyMap
	help        help.Model
	habitsPanel habits.Model

	form      *huh.Form
	habitForm *HabitFormModel

	habitToDelete      int64
	habitToDeleteTitle string
	formError          string

	quitting bool
	width    int
	height   int
}

func NewModel(repo *repository.HabitRepository) Model {
	list := habitlist.New(repo)
	// On error the panel starts empty; the next successful mutation reloads it.
	_ = list.Load()

	return Model{
		repo:        repo,
		session:     session.New(repo),
		habits:      list,
		state:       constants.StateList,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsPanel: habits.New(list.Habits(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Enter},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
