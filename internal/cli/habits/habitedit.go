package habits

import (
	"fmt"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/session"
	"github.com/ddy/habitpulse/internal/validation"
)

type HabitEditCmd struct {
	ID          int64     `arg:"" help:"Habit ID."`
	Title       *string   `help:"New habit title."`
	Cycle       *string   `short:"c" help:"New repeat cycle (daily|weekly). Switching cycles clears reminder times."`
	Days        *string   `short:"d" help:"New comma-separated weekdays for weekly habits."`
	Times       *[]string `short:"t" help:"Replacement reminder times (HH:MM)."`
	Notes       *string   `short:"n" help:"New notes."`
	Supervision *string   `short:"s" help:"New supervision method (local|sms)."`
	Supervisors *[]string `short:"p" help:"Replacement supervisor phone numbers."`
}

func (c *HabitEditCmd) Validate() error {
	if c.Cycle != nil {
		if _, err := parseCycle(*c.Cycle); err != nil {
			return err
		}
	}
	if c.Supervision != nil {
		if _, err := parseSupervision(*c.Supervision); err != nil {
			return err
		}
	}
	if c.Times != nil {
		for _, t := range *c.Times {
			if !validation.IsValidTimeFormat(t) {
				return fmt.Errorf("invalid reminder time (expected HH:MM): %s", t)
			}
		}
	}
	if c.Supervisors != nil {
		for _, p := range *c.Supervisors {
			if !validation.IsPhoneValid(p) {
				return fmt.Errorf("invalid phone number: %s", p)
			}
		}
	}
	return nil
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	s := session.New(ctx.Repo())
	if err := s.LoadForEdit(c.ID); err != nil {
		return fmt.Errorf("failed to find habit: %w", err)
	}

	if c.Title != nil {
		s.SetTitle(*c.Title)
	}
	if c.Cycle != nil {
		cycle, _ := parseCycle(*c.Cycle)
		if cycle != s.RepeatCycle() {
			s.SetRepeatCycle(cycle)
		}
	}
	if c.Days != nil {
		if s.RepeatCycle() != models.RepeatWeekly {
			return fmt.Errorf("--days only applies to weekly habits")
		}
		days, err := cli.ParseRepeatDays(*c.Days)
		if err != nil {
			return err
		}
		for d := 0; d < 7; d++ {
			s.SetSelectedDay(d, false)
		}
		for _, d := range days {
			s.SetSelectedDay(d, true)
		}
	}
	if c.Times != nil {
		if s.RepeatCycle() == models.RepeatWeekly && len(*c.Times) > 1 {
			return fmt.Errorf("weekly habits take a single reminder time")
		}
		s.SetReminderTimes(nil)
		for _, t := range *c.Times {
			s.AddReminderTime(t)
		}
	}
	if c.Notes != nil {
		s.SetNotes(*c.Notes)
	}
	if c.Supervision != nil {
		method, _ := parseSupervision(*c.Supervision)
		s.SetSupervisionMethod(method)
	}
	if c.Supervisors != nil {
		for _, p := range s.SupervisorPhoneNumbers() {
			s.RemoveSupervisorPhoneNumber(p)
		}
		for _, p := range *c.Supervisors {
			s.AddSupervisorPhoneNumber(p)
		}
	}

	habit, err := s.Save()
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s (ID: %d)\n", habit.Title, habit.ID)
	fmt.Printf("Schedule: %s\n", cli.FormatSchedule(habit))
	return nil
}
