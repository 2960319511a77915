// Package session holds the mutable draft of a habit being created or
// edited. Setters shape input as it arrives (length limits, sorting,
// deduplication); Save validates the draft and persists it through the
// repository.
package session

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/repository"
)

var (
	ErrBlankTitle           = errors.New("title cannot be blank")
	ErrNoDaysSelected       = errors.New("weekly habit needs at least one day selected")
	ErrMissingReminderTime  = errors.New("at least one reminder time is required")
	ErrBlankSupervisorPhone = errors.New("SMS reporting needs at least one non-blank supervisor phone number")
)

// Session is a single mutable habit draft. A zero id means a new habit is
// being created; a positive id means an existing record is being edited.
type Session struct {
	repo *repository.HabitRepository

	id                     int64
	title                  string
	repeatCycle            models.RepeatCycle
	selectedDays           []int
	reminderTimes          []string
	notes                  string
	supervisionMethod      models.SupervisionMethod
	supervisorPhoneNumbers []string

	// Carried through an edit untouched by the form, so an update does
	// not clobber completion state or the creation timestamp.
	completed       bool
	completionCount int
	createdAt       time.Time
}

func New(repo *repository.HabitRepository) *Session {
	s := &Session{repo: repo}
	s.Reset()
	return s
}

// Getters
func (s *Session) ID() int64                                  { return s.id }
func (s *Session) Title() string                              { return s.title }
func (s *Session) RepeatCycle() models.RepeatCycle            { return s.repeatCycle }
func (s *Session) SelectedDays() []int                        { return append([]int(nil), s.selectedDays...) }
func (s *Session) ReminderTimes() []string                    { return append([]string(nil), s.reminderTimes...) }
func (s *Session) Notes() string                              { return s.notes }
func (s *Session) SupervisionMethod() models.SupervisionMethod { return s.supervisionMethod }
func (s *Session) SupervisorPhoneNumbers() []string {
	return append([]string(nil), s.supervisorPhoneNumbers...)
}

// IsEditing reports whether the draft was loaded from an existing record.
func (s *Session) IsEditing() bool { return s.id > 0 }

var newlineStripper = strings.NewReplacer("\r", "", "\n", "")

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// SetTitle strips newlines and truncates to the title limit.
func (s *Session) SetTitle(title string) {
	s.title = truncateRunes(newlineStripper.Replace(title), constants.TitleMaxLen)
}

// SetRepeatCycle stores the cycle and resets the dependent schedule fields:
// weekly selects all seven days by default, daily clears the selection, and
// either way prior reminder times are discarded since they no longer apply.
func (s *Session) SetRepeatCycle(cycle models.RepeatCycle) {
	s.repeatCycle = cycle
	if cycle == models.RepeatWeekly {
		s.selectedDays = []int{0, 1, 2, 3, 4, 5, 6}
	} else {
		s.selectedDays = nil
	}
	s.reminderTimes = nil
}

// SetSelectedDay adds or removes a repeat day (0=Monday .. 6=Sunday),
// keeping the selection sorted. Out-of-range days are ignored.
func (s *Session) SetSelectedDay(day int, selected bool) {
	if day < 0 || day > 6 {
		return
	}
	if selected {
		for _, d := range s.selectedDays {
			if d == day {
				return
			}
		}
		s.selectedDays = append(s.selectedDays, day)
		sort.Ints(s.selectedDays)
		return
	}
	for i, d := range s.selectedDays {
		if d == day {
			s.selectedDays = append(s.selectedDays[:i], s.selectedDays[i+1:]...)
			return
		}
	}
}

// AddReminderTime appends a time and re-sorts the sequence ascending.
// Adding a time that is already present is a no-op.
func (s *Session) AddReminderTime(t string) {
	for _, existing := range s.reminderTimes {
		if existing == t {
			return
		}
	}
	s.reminderTimes = append(s.reminderTimes, t)
	sort.Strings(s.reminderTimes)
}

// RemoveReminderTime removes the first occurrence of a time, if present.
func (s *Session) RemoveReminderTime(t string) {
	for i, existing := range s.reminderTimes {
		if existing == t {
			s.reminderTimes = append(s.reminderTimes[:i], s.reminderTimes[i+1:]...)
			return
		}
	}
}

// SetReminderTimes replaces the whole sequence. Used for the weekly case
// where a single shared time applies to every selected day.
func (s *Session) SetReminderTimes(times []string) {
	s.reminderTimes = append([]string(nil), times...)
}

// SetNotes truncates to the notes limit; newlines are retained.
func (s *Session) SetNotes(notes string) {
	s.notes = truncateRunes(notes, constants.NotesMaxLen)
}

// SetSupervisionMethod stores the method. It deliberately does not seed a
// placeholder supervisor entry.
func (s *Session) SetSupervisionMethod(method models.SupervisionMethod) {
	s.supervisionMethod = method
}

func cleanPhone(phone string) string {
	return truncateRunes(newlineStripper.Replace(phone), constants.PhoneMaxLen)
}

// AddSupervisorPhoneNumber appends a number after stripping newlines and
// truncating. Format validation is the caller's responsibility, gated with
// validation.IsPhoneValid before calling.
func (s *Session) AddSupervisorPhoneNumber(phone string) {
	s.supervisorPhoneNumbers = append(s.supervisorPhoneNumbers, cleanPhone(phone))
}

// RemoveSupervisorPhoneNumber removes the first occurrence, if present.
func (s *Session) RemoveSupervisorPhoneNumber(phone string) {
	for i, existing := range s.supervisorPhoneNumbers {
		if existing == phone {
			s.supervisorPhoneNumbers = append(s.supervisorPhoneNumbers[:i], s.supervisorPhoneNumbers[i+1:]...)
			return
		}
	}
}

// UpdateSupervisorPhoneNumber replaces the entry at index, if it exists.
func (s *Session) UpdateSupervisorPhoneNumber(index int, phone string) {
	if index < 0 || index >= len(s.supervisorPhoneNumbers) {
		return
	}
	s.supervisorPhoneNumbers[index] = cleanPhone(phone)
}

// LoadForEdit fetches a record by id and overwrites every draft field,
// switching the session into editing mode.
func (s *Session) LoadForEdit(id int64) error {
	habit, err := s.repo.GetHabit(id)
	if err != nil {
		return err
	}

	s.id = habit.ID
	s.title = habit.Title
	s.repeatCycle = habit.RepeatCycle
	s.selectedDays = append([]int(nil), habit.RepeatDays...)
	s.reminderTimes = append([]string(nil), habit.ReminderTimes...)
	s.notes = habit.Notes
	s.supervisionMethod = habit.SupervisionMethod
	s.supervisorPhoneNumbers = append([]string(nil), habit.SupervisorPhoneNumbers...)
	s.completed = habit.Completed
	s.completionCount = habit.CompletionCount
	s.createdAt = habit.CreatedAt
	return nil
}

// Reset clears every field back to the new-habit defaults.
func (s *Session) Reset() {
	s.id = 0
	s.title = ""
	s.repeatCycle = models.RepeatDaily
	s.selectedDays = nil
	s.reminderTimes = nil
	s.notes = ""
	s.supervisionMethod = models.SupervisionLocalNotification
	s.supervisorPhoneNumbers = nil
	s.completed = false
	s.completionCount = 0
	s.createdAt = time.Time{}
}

// IsValid reports whether the draft satisfies every save requirement. It is
// advisory: individual setters may leave the draft temporarily invalid.
func (s *Session) IsValid() bool {
	return s.Validate() == nil
}

// Validate returns the first unmet save requirement, or nil for a valid
// draft.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.title) == "" {
		return ErrBlankTitle
	}
	if s.repeatCycle == models.RepeatWeekly && len(s.selectedDays) == 0 {
		return ErrNoDaysSelected
	}
	if len(s.reminderTimes) == 0 {
		return ErrMissingReminderTime
	}
	if s.supervisionMethod == models.SupervisionSMSReporting {
		if len(s.supervisorPhoneNumbers) == 0 {
			return ErrBlankSupervisorPhone
		}
		for _, phone := range s.supervisorPhoneNumbers {
			if strings.TrimSpace(phone) == "" {
				return ErrBlankSupervisorPhone
			}
		}
	}
	return nil
}

// Save validates the draft, builds a Habit, and inserts or updates it
// depending on whether an id was loaded. Cross-field rules are applied when
// the record is built: repeat days are dropped unless the cycle is weekly
// and supervisor numbers are dropped unless SMS reporting is selected. On
// success the returned record carries its assigned id and the draft is
// reset.
func (s *Session) Save() (models.Habit, error) {
	if strings.TrimSpace(s.title) == "" {
		return models.Habit{}, ErrBlankTitle
	}
	if s.repeatCycle == models.RepeatWeekly && len(s.selectedDays) == 0 {
		return models.Habit{}, ErrNoDaysSelected
	}
	if s.supervisionMethod == models.SupervisionSMSReporting {
		for _, phone := range s.supervisorPhoneNumbers {
			if strings.TrimSpace(phone) == "" {
				return models.Habit{}, ErrBlankSupervisorPhone
			}
		}
	}

	habit := models.Habit{
		ID:                s.id,
		Title:             s.title,
		RepeatCycle:       s.repeatCycle,
		ReminderTimes:     s.ReminderTimes(),
		Notes:             s.notes,
		SupervisionMethod: s.supervisionMethod,
		Completed:         s.completed,
		CompletionCount:   s.completionCount,
		CreatedAt:         s.createdAt,
	}
	if s.repeatCycle == models.RepeatWeekly {
		habit.RepeatDays = s.SelectedDays()
	}
	if s.supervisionMethod == models.SupervisionSMSReporting {
		habit.SupervisorPhoneNumbers = s.SupervisorPhoneNumbers()
	}

	if s.id > 0 {
		if err := s.repo.UpdateHabit(habit); err != nil {
			return models.Habit{}, err
		}
	} else {
		habit.Completed = false
		habit.CompletionCount = 0
		habit.CreatedAt = time.Now()
		id, err := s.repo.InsertHabit(habit)
		if err != nil {
			return models.Habit{}, err
		}
		habit.ID = id
	}

	s.Reset()
	return habit, nil
}
