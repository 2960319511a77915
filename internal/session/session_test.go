package session

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/repository"
	"github.com/ddy/habitpulse/internal/storage"
)

func setupSession(t *testing.T) *Session {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(repository.New(store))
}

func TestSetTitleShaping(t *testing.T) {
	s := setupSession(t)

	s.SetTitle("Morning\nrun\r\n")
	if got := s.Title(); got != "Morningrun" {
		t.Errorf("expected newlines stripped, got %q", got)
	}

	long := make([]rune, 250)
	for i := range long {
		long[i] = 'a'
	}
	s.SetTitle(string(long))
	if got := len([]rune(s.Title())); got != 200 {
		t.Errorf("expected title truncated to 200 runes, got %d", got)
	}
}

func TestSetRepeatCycleResetsSchedule(t *testing.T) {
	s := setupSession(t)

	s.AddReminderTime("07:00")
	s.SetRepeatCycle(models.RepeatWeekly)

	if got := s.SelectedDays(); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected all seven days selected, got %v", got)
	}
	if got := s.ReminderTimes(); len(got) != 0 {
		t.Errorf("expected reminder times cleared, got %v", got)
	}

	s.AddReminderTime("08:00")
	s.SetRepeatCycle(models.RepeatDaily)
	if got := s.SelectedDays(); len(got) != 0 {
		t.Errorf("expected days cleared for daily, got %v", got)
	}
	if got := s.ReminderTimes(); len(got) != 0 {
		t.Errorf("expected reminder times cleared again, got %v", got)
	}
}

func TestSetSelectedDay(t *testing.T) {
	s := setupSession(t)
	s.SetRepeatCycle(models.RepeatWeekly)

	for d := 0; d < 7; d++ {
		s.SetSelectedDay(d, false)
	}
	s.SetSelectedDay(4, true)
	s.SetSelectedDay(1, true)
	s.SetSelectedDay(1, true) // duplicate select is a no-op
	s.SetSelectedDay(9, true) // out of range is ignored

	if got := s.SelectedDays(); !reflect.DeepEqual(got, []int{1, 4}) {
		t.Errorf("expected sorted selection [1 4], got %v", got)
	}

	s.SetSelectedDay(4, false)
	if got := s.SelectedDays(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected [1] after deselect, got %v", got)
	}
}

func TestAddReminderTimeIdempotentAndSorted(t *testing.T) {
	s := setupSession(t)

	s.AddReminderTime("21:30")
	s.AddReminderTime("07:00")
	s.AddReminderTime("07:00")

	if got := s.ReminderTimes(); !reflect.DeepEqual(got, []string{"07:00", "21:30"}) {
		t.Errorf("expected sorted deduplicated times, got %v", got)
	}

	s.RemoveReminderTime("07:00")
	if got := s.ReminderTimes(); !reflect.DeepEqual(got, []string{"21:30"}) {
		t.Errorf("expected [21:30] after removal, got %v", got)
	}
}

func TestSupervisorPhoneShaping(t *testing.T) {
	s := setupSession(t)

	s.AddSupervisorPhoneNumber("0123\n456789")
	if got := s.SupervisorPhoneNumbers(); !reflect.DeepEqual(got, []string{"0123456789"}) {
		t.Errorf("expected newlines stripped, got %v", got)
	}

	s.UpdateSupervisorPhoneNumber(0, "9876543210")
	if got := s.SupervisorPhoneNumbers(); !reflect.DeepEqual(got, []string{"9876543210"}) {
		t.Errorf("expected updated number, got %v", got)
	}

	s.UpdateSupervisorPhoneNumber(5, "0000000000") // out of range is ignored
	s.RemoveSupervisorPhoneNumber("9876543210")
	if got := s.SupervisorPhoneNumbers(); len(got) != 0 {
		t.Errorf("expected empty supervisors, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	s := setupSession(t)

	if err := s.Validate(); !errors.Is(err, ErrBlankTitle) {
		t.Errorf("expected ErrBlankTitle, got %v", err)
	}

	s.SetTitle("Read")
	if err := s.Validate(); !errors.Is(err, ErrMissingReminderTime) {
		t.Errorf("expected ErrMissingReminderTime, got %v", err)
	}

	s.SetRepeatCycle(models.RepeatWeekly)
	for d := 0; d < 7; d++ {
		s.SetSelectedDay(d, false)
	}
	if err := s.Validate(); !errors.Is(err, ErrNoDaysSelected) {
		t.Errorf("expected ErrNoDaysSelected, got %v", err)
	}

	s.SetSelectedDay(0, true)
	s.AddReminderTime("08:00")
	if !s.IsValid() {
		t.Errorf("expected valid draft, got %v", s.Validate())
	}

	s.SetSupervisionMethod(models.SupervisionSMSReporting)
	if err := s.Validate(); !errors.Is(err, ErrBlankSupervisorPhone) {
		t.Errorf("expected ErrBlankSupervisorPhone, got %v", err)
	}

	s.AddSupervisorPhoneNumber("0123456789")
	if !s.IsValid() {
		t.Errorf("expected valid draft with supervisor, got %v", s.Validate())
	}
}

func TestSaveGuards(t *testing.T) {
	s := setupSession(t)

	if _, err := s.Save(); !errors.Is(err, ErrBlankTitle) {
		t.Errorf("expected ErrBlankTitle, got %v", err)
	}

	s.SetTitle("Stretch")
	s.SetRepeatCycle(models.RepeatWeekly)
	for d := 0; d < 7; d++ {
		s.SetSelectedDay(d, false)
	}
	if _, err := s.Save(); !errors.Is(err, ErrNoDaysSelected) {
		t.Errorf("expected ErrNoDaysSelected, got %v", err)
	}

	// A blank supervisor entry blocks the save under SMS reporting.
	s.SetSelectedDay(2, true)
	s.SetSupervisionMethod(models.SupervisionSMSReporting)
	s.AddSupervisorPhoneNumber("   ")
	if _, err := s.Save(); !errors.Is(err, ErrBlankSupervisorPhone) {
		t.Errorf("expected ErrBlankSupervisorPhone, got %v", err)
	}
}

func TestSaveInsertRoundTrip(t *testing.T) {
	s := setupSession(t)

	s.SetTitle("Journal")
	s.SetRepeatCycle(models.RepeatWeekly)
	for d := 0; d < 7; d++ {
		s.SetSelectedDay(d, false)
	}
	s.SetSelectedDay(0, true)
	s.SetSelectedDay(6, true)
	s.AddReminderTime("22:00")
	s.SetNotes("before bed")
	s.SetSupervisionMethod(models.SupervisionSMSReporting)
	s.AddSupervisorPhoneNumber("0123456789")

	habit, err := s.Save()
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if habit.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", habit.ID)
	}
	if habit.Completed || habit.CompletionCount != 0 {
		t.Errorf("expected fresh completion state, got completed=%v count=%d", habit.Completed, habit.CompletionCount)
	}
	if !reflect.DeepEqual(habit.RepeatDays, []int{0, 6}) {
		t.Errorf("unexpected repeat days: %v", habit.RepeatDays)
	}

	// The draft resets after a successful save.
	if s.Title() != "" || s.IsEditing() {
		t.Error("expected session reset after save")
	}
}

func TestSaveDropsCrossFieldLeftovers(t *testing.T) {
	s := setupSession(t)

	// Build a weekly SMS habit, then switch back to daily local before
	// saving. The stale days and supervisors must not persist.
	s.SetTitle("Walk")
	s.SetRepeatCycle(models.RepeatWeekly)
	s.AddReminderTime("12:00")
	s.SetSupervisionMethod(models.SupervisionSMSReporting)
	s.AddSupervisorPhoneNumber("0123456789")
	s.SetRepeatCycle(models.RepeatDaily)
	s.AddReminderTime("12:00")
	s.SetSupervisionMethod(models.SupervisionLocalNotification)

	habit, err := s.Save()
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if len(habit.RepeatDays) != 0 {
		t.Errorf("expected no repeat days for daily habit, got %v", habit.RepeatDays)
	}
	if len(habit.SupervisorPhoneNumbers) != 0 {
		t.Errorf("expected no supervisors without SMS reporting, got %v", habit.SupervisorPhoneNumbers)
	}
}

func TestSaveUpdatePreservesCompletion(t *testing.T) {
	s := setupSession(t)

	s.SetTitle("Meditate")
	s.AddReminderTime("06:30")
	habit, err := s.Save()
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	// Complete it behind the session's back.
	if err := s.repo.SetCompletedWithIncrement(habit.ID, true); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}

	if err := s.LoadForEdit(habit.ID); err != nil {
		t.Fatalf("failed to load for edit: %v", err)
	}
	if !s.IsEditing() {
		t.Error("expected editing mode after load")
	}
	s.SetTitle("Meditate daily")
	updated, err := s.Save()
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	got, err := s.repo.GetHabit(updated.ID)
	if err != nil {
		t.Fatalf("failed to fetch: %v", err)
	}
	if got.Title != "Meditate daily" {
		t.Errorf("expected renamed habit, got %q", got.Title)
	}
	if !got.Completed || got.CompletionCount != 1 {
		t.Errorf("update clobbered completion: completed=%v count=%d", got.Completed, got.CompletionCount)
	}
}
