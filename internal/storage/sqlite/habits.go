package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ddy/habitpulse/internal/models"
)

// ErrNotFound is returned when a habit id does not exist in the store.
var ErrNotFound = errors.New("habit not found")

const habitColumns = `id, title, repeat_cycle, repeat_days, reminder_times, notes,
	supervision_method, supervisor_phone_numbers, completed, completion_count, created_at`

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var repeatDays, reminderTimes, phoneNumbers string
	var createdAtMillis int64

	err := row.Scan(&h.ID, &h.Title, &h.RepeatCycle, &repeatDays, &reminderTimes,
		&h.Notes, &h.SupervisionMethod, &phoneNumbers, &h.Completed,
		&h.CompletionCount, &createdAtMillis)
	if err != nil {
		return models.Habit{}, err
	}

	if err := json.Unmarshal([]byte(repeatDays), &h.RepeatDays); err != nil {
		return models.Habit{}, fmt.Errorf("failed to decode repeat_days for habit %d: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(reminderTimes), &h.ReminderTimes); err != nil {
		return models.Habit{}, fmt.Errorf("failed to decode reminder_times for habit %d: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(phoneNumbers), &h.SupervisorPhoneNumbers); err != nil {
		return models.Habit{}, fmt.Errorf("failed to decode supervisor_phone_numbers for habit %d: %w", h.ID, err)
	}

	h.CreatedAt = time.UnixMilli(createdAtMillis)
	return h, nil
}

// encodeList marshals a list column, writing empty lists as "[]" rather
// than "null" so decoding always yields a slice.
func encodeList(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT ` + habitColumns + `
		FROM habits ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}
	return h, err
}

func (s *Store) InsertHabit(habit models.Habit) (int64, error) {
	repeatDays, err := encodeList(habit.RepeatDays)
	if err != nil {
		return 0, err
	}
	reminderTimes, err := encodeList(habit.ReminderTimes)
	if err != nil {
		return 0, err
	}
	phoneNumbers, err := encodeList(habit.SupervisorPhoneNumbers)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(`
		INSERT INTO habits (title, repeat_cycle, repeat_days, reminder_times, notes,
			supervision_method, supervisor_phone_numbers, completed, completion_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.Title, habit.RepeatCycle, repeatDays, reminderTimes, habit.Notes,
		habit.SupervisionMethod, phoneNumbers, habit.Completed, habit.CompletionCount,
		habit.CreatedAt.UnixMilli())
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	repeatDays, err := encodeList(habit.RepeatDays)
	if err != nil {
		return err
	}
	reminderTimes, err := encodeList(habit.ReminderTimes)
	if err != nil {
		return err
	}
	phoneNumbers, err := encodeList(habit.SupervisorPhoneNumbers)
	if err != nil {
		return err
	}

	// Completion fields and created_at only change through the dedicated
	// completion operations and insert, never through a record update.
	result, err := s.db.Exec(`
		UPDATE habits SET
			title = ?,
			repeat_cycle = ?,
			repeat_days = ?,
			reminder_times = ?,
			notes = ?,
			supervision_method = ?,
			supervisor_phone_numbers = ?
		WHERE id = ?`,
		habit.Title, habit.RepeatCycle, repeatDays, reminderTimes, habit.Notes,
		habit.SupervisionMethod, phoneNumbers, habit.ID)
	if err != nil {
		return err
	}

	return requireRow(result, habit.ID)
}

func (s *Store) DeleteHabit(id int64) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

func (s *Store) SetCompleted(id int64, completed bool) error {
	result, err := s.db.Exec(`UPDATE habits SET completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

// SetCompletedWithIncrement bumps completion_count in the same statement as
// the flag update, so a false->true toggle is atomic at the storage layer.
func (s *Store) SetCompletedWithIncrement(id int64, completed bool) error {
	result, err := s.db.Exec(`
		UPDATE habits SET
			completed = ?,
			completion_count = CASE WHEN ? THEN completion_count + 1 ELSE completion_count END
		WHERE id = ?`, completed, completed, id)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

func (s *Store) SetCompletionCount(id int64, count int) error {
	result, err := s.db.Exec(`UPDATE habits SET completion_count = ? WHERE id = ?`, count, id)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

func requireRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}
	return nil
}
