package storage

import (
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/storage/sqlite"
)

// ErrHabitNotFound is returned when a habit id does not exist in the store.
var ErrHabitNotFound = sqlite.ErrNotFound

// Provider is the storage gateway for habit records. Any storage-layer fault
// propagates to the caller; there is no retry.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	GetAllHabits() ([]models.Habit, error)
	GetHabit(id int64) (models.Habit, error)
	// InsertHabit stores a new record and returns the assigned id.
	InsertHabit(models.Habit) (int64, error)
	// UpdateHabit replaces every field of an existing record except the
	// completion fields and creation timestamp, which only change through
	// the dedicated operations below.
	UpdateHabit(models.Habit) error
	DeleteHabit(id int64) error

	// Completion
	SetCompleted(id int64, completed bool) error
	// SetCompletedWithIncrement sets the completed flag and bumps the
	// completion count in the same statement when completed is true.
	SetCompletedWithIncrement(id int64, completed bool) error
	SetCompletionCount(id int64, count int) error

	// Utils
	GetConfigPath() string
}
