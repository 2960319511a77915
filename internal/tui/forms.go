package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/session"
	"github.com/ddy/habitpulse/internal/validation"
)

// HabitFormModel backs the huh form fields. Multi-value fields are entered
// comma-separated and split when the form completes.
type HabitFormModel struct {
	Title       string
	Cycle       models.RepeatCycle
	Days        []int
	Times       string
	Notes       string
	Supervision models.SupervisionMethod
	Supervisors string
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewFormModel seeds the form from the draft session, so edits start from
// the loaded record and adds start from the session defaults.
func NewFormModel(s *session.Session) *HabitFormModel {
	return &HabitFormModel{
		Title:       s.Title(),
		Cycle:       s.RepeatCycle(),
		Days:        s.SelectedDays(),
		Times:       strings.Join(s.ReminderTimes(), ", "),
		Notes:       s.Notes(),
		Supervision: s.SupervisionMethod(),
		Supervisors: strings.Join(s.SupervisorPhoneNumbers(), ", "),
	}
}

// Apply pushes the completed form values into the session draft.
func (fm *HabitFormModel) Apply(s *session.Session) {
	s.SetTitle(fm.Title)
	if fm.Cycle != s.RepeatCycle() {
		s.SetRepeatCycle(fm.Cycle)
	}
	if fm.Cycle == models.RepeatWeekly {
		selected := make(map[int]bool, len(fm.Days))
		for _, d := range fm.Days {
			selected[d] = true
		}
		for d := 0; d < 7; d++ {
			s.SetSelectedDay(d, selected[d])
		}
	}

	s.SetReminderTimes(nil)
	for _, t := range splitCSV(fm.Times) {
		s.AddReminderTime(t)
	}

	s.SetNotes(fm.Notes)
	s.SetSupervisionMethod(fm.Supervision)

	for _, p := range s.SupervisorPhoneNumbers() {
		s.RemoveSupervisorPhoneNumber(p)
	}
	if fm.Supervision == models.SupervisionSMSReporting {
		for _, p := range splitCSV(fm.Supervisors) {
			s.AddSupervisorPhoneNumber(p)
		}
	}
}

// NewHabitForm builds the add/edit form. Validation closures read sibling
// fields from the form model for the cross-field rules.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	dayOptions := make([]huh.Option[int], 7)
	for i, name := range constants.WeekdayNames {
		dayOptions[i] = huh.NewOption(name, i)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be blank")
					}
					return nil
				}),
			huh.NewSelect[models.RepeatCycle]().
				Title("Repeat Cycle").
				Options(
					huh.NewOption("Daily", models.RepeatDaily),
					huh.NewOption("Weekly", models.RepeatWeekly),
				).
				Value(&fm.Cycle),
			huh.NewMultiSelect[int]().
				Title("Repeat Days").
				Description("Weekly habits only").
				Options(dayOptions...).
				Value(&fm.Days).
				Validate(func(days []int) error {
					if fm.Cycle == models.RepeatWeekly && len(days) == 0 {
						return fmt.Errorf("select at least one day")
					}
					return nil
				}),
			huh.NewInput().
				Title("Reminder Times").
				Description("Comma-separated HH:MM. Weekly habits take a single time.").
				Value(&fm.Times).
				Validate(func(s string) error {
					times := splitCSV(s)
					if len(times) == 0 {
						return fmt.Errorf("at least one reminder time is required")
					}
					if fm.Cycle == models.RepeatWeekly && len(times) > 1 {
						return fmt.Errorf("weekly habits take a single reminder time")
					}
					for _, t := range times {
						if !validation.IsValidTimeFormat(t) {
							return fmt.Errorf("invalid time %q, use HH:MM", t)
						}
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Notes (optional)").
				Value(&fm.Notes),
			huh.NewSelect[models.SupervisionMethod]().
				Title("Supervision").
				Options(
					huh.NewOption("Local notification", models.SupervisionLocalNotification),
					huh.NewOption("SMS reporting", models.SupervisionSMSReporting),
				).
				Value(&fm.Supervision),
			huh.NewInput().
				Title("Supervisor Phones").
				Description("Comma-separated, SMS reporting only").
				Value(&fm.Supervisors).
				Validate(func(s string) error {
					if fm.Supervision != models.SupervisionSMSReporting {
						return nil
					}
					phones := splitCSV(s)
					if len(phones) == 0 {
						return fmt.Errorf("SMS reporting needs at least one phone number")
					}
					for _, p := range phones {
						if !validation.IsPhoneValid(p) {
							return fmt.Errorf("invalid phone number %q", p)
						}
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
