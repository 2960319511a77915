package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/models"
)

type AddHabitMsg struct{}

type EditHabitMsg struct {
	ID int64
}

type CompleteHabitMsg struct {
	ID int64
}

type UncompleteHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID int64
}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	if i.Habit.Completed {
		return "✓ " + i.Habit.Title
	}
	return "○ " + i.Habit.Title
}

func (i Item) Description() string {
	var b strings.Builder
	if i.Habit.RepeatCycle == models.RepeatWeekly {
		names := make([]string, 0, len(i.Habit.RepeatDays))
		for _, d := range i.Habit.RepeatDays {
			if d >= 0 && d < len(constants.WeekdayNames) {
				names = append(names, constants.WeekdayNames[d])
			}
		}
		b.WriteString("weekly on " + strings.Join(names, ", "))
	} else {
		b.WriteString("daily")
	}
	if len(i.Habit.ReminderTimes) > 0 {
		b.WriteString(" at " + strings.Join(i.Habit.ReminderTimes, ", "))
	}
	if i.Habit.SupervisionMethod == models.SupervisionSMSReporting {
		b.WriteString(" · SMS supervised")
	}
	fmt.Fprintf(&b, " · %d completions", i.Habit.CompletionCount)
	return b.String()
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Complete   key.Binding
	Uncomplete key.Binding
	Delete     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Complete: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Uncomplete: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, width, height int) Model {
	l := list.New(toItems(habits), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Complete, keys.Uncomplete, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Complete, keys.Uncomplete, keys.Delete}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func toItems(habits []models.Habit) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.list.SetItems(toItems(habits))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.Habit.Completed {
					return m, func() tea.Msg { return CompleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Uncomplete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit.Completed {
					return m, func() tea.Msg { return UncompleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
