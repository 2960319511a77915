// Package habitlist caches the persisted habits for display. The cache is a
// snapshot: every mutation reloads it from the repository once the write has
// completed.
package habitlist

import (
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/repository"
)

type List struct {
	repo   *repository.HabitRepository
	habits []models.Habit
}

func New(repo *repository.HabitRepository) *List {
	return &List{repo: repo}
}

// Habits returns the cached snapshot, newest first.
func (l *List) Habits() []models.Habit {
	return l.habits
}

// Load replaces the cache with a full fetch from the repository.
func (l *List) Load() error {
	habits, err := l.repo.GetAllHabits()
	if err != nil {
		return err
	}
	l.habits = habits
	return nil
}

// SetCompleted toggles the completed flag. Marking complete goes through the
// increment operation so the completion count bumps atomically; unmarking
// leaves the count alone. The cache reloads after the write returns.
func (l *List) SetCompleted(id int64, completed bool) error {
	var err error
	if completed {
		err = l.repo.SetCompletedWithIncrement(id, completed)
	} else {
		err = l.repo.SetCompleted(id, completed)
	}
	if err != nil {
		return err
	}
	return l.Load()
}

// Delete removes a habit permanently, then reloads the cache.
func (l *List) Delete(id int64) error {
	if err := l.repo.DeleteHabit(id); err != nil {
		return err
	}
	return l.Load()
}
