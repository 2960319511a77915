// Package repository exposes the habit persistence contract consumed by the
// edit session and list state. It is a pass-through over the storage
// provider and adds no logic of its own.
package repository

import (
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/storage"
)

type HabitRepository struct {
	store storage.Provider
}

func New(store storage.Provider) *HabitRepository {
	return &HabitRepository{store: store}
}

func (r *HabitRepository) GetAllHabits() ([]models.Habit, error) { return r.store.GetAllHabits() }

func (r *HabitRepository) GetHabit(id int64) (models.Habit, error) { return r.store.GetHabit(id) }

func (r *HabitRepository) InsertHabit(habit models.Habit) (int64, error) {
	return r.store.InsertHabit(habit)
}

func (r *HabitRepository) UpdateHabit(habit models.Habit) error { return r.store.UpdateHabit(habit) }

func (r *HabitRepository) DeleteHabit(id int64) error { return r.store.DeleteHabit(id) }

func (r *HabitRepository) SetCompleted(id int64, completed bool) error {
	return r.store.SetCompleted(id, completed)
}

func (r *HabitRepository) SetCompletedWithIncrement(id int64, completed bool) error {
	return r.store.SetCompletedWithIncrement(id, completed)
}

func (r *HabitRepository) SetCompletionCount(id int64, count int) error {
	return r.store.SetCompletionCount(id, count)
}
