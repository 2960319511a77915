package storage

import (
	"database/sql"

	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite-backed store at the given path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

// Reset recreates the store from scratch, discarding all data.
func (s *SQLiteStore) Reset(logFn func(string)) error { return s.store.Reset(logFn) }

// GetDB returns the underlying database connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

// Habit methods
func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error)        { return s.store.GetAllHabits() }
func (s *SQLiteStore) GetHabit(id int64) (models.Habit, error)      { return s.store.GetHabit(id) }
func (s *SQLiteStore) InsertHabit(h models.Habit) (int64, error)    { return s.store.InsertHabit(h) }
func (s *SQLiteStore) UpdateHabit(h models.Habit) error             { return s.store.UpdateHabit(h) }
func (s *SQLiteStore) DeleteHabit(id int64) error                   { return s.store.DeleteHabit(id) }
func (s *SQLiteStore) SetCompleted(id int64, completed bool) error  { return s.store.SetCompleted(id, completed) }
func (s *SQLiteStore) SetCompletionCount(id int64, count int) error { return s.store.SetCompletionCount(id, count) }

func (s *SQLiteStore) SetCompletedWithIncrement(id int64, completed bool) error {
	return s.store.SetCompletedWithIncrement(id, completed)
}
