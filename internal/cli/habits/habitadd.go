package habits

import (
	"fmt"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/session"
	"github.com/ddy/habitpulse/internal/validation"
)

type HabitAddCmd struct {
	Title       string   `arg:"" help:"Habit title."`
	Cycle       string   `short:"c" help:"Repeat cycle (daily|weekly)." default:"daily"`
	Days        string   `short:"d" help:"Comma-separated weekdays for weekly habits (defaults to every day)."`
	Times       []string `short:"t" help:"Reminder times (HH:MM). Weekly habits take exactly one."`
	Notes       string   `short:"n" help:"Free-form notes."`
	Supervision string   `short:"s" help:"Supervision method (local|sms)." default:"local"`
	Supervisors []string `short:"p" help:"Supervisor phone numbers for SMS reporting."`
}

func (c *HabitAddCmd) Validate() error {
	if _, err := parseCycle(c.Cycle); err != nil {
		return err
	}
	if _, err := parseSupervision(c.Supervision); err != nil {
		return err
	}
	if c.Days != "" && c.Cycle != "weekly" {
		return fmt.Errorf("--days only applies to weekly habits")
	}
	if c.Cycle == "weekly" && len(c.Times) > 1 {
		return fmt.Errorf("weekly habits take a single reminder time")
	}
	for _, t := range c.Times {
		if !validation.IsValidTimeFormat(t) {
			return fmt.Errorf("invalid reminder time (expected HH:MM): %s", t)
		}
	}
	for _, p := range c.Supervisors {
		if !validation.IsPhoneValid(p) {
			return fmt.Errorf("invalid phone number: %s", p)
		}
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	cycle, _ := parseCycle(c.Cycle)
	method, _ := parseSupervision(c.Supervision)

	s := session.New(ctx.Repo())
	s.SetTitle(c.Title)
	s.SetRepeatCycle(cycle)

	if cycle == models.RepeatWeekly && c.Days != "" {
		days, err := cli.ParseRepeatDays(c.Days)
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

	for _, t := range c.Times {
		s.AddReminderTime(t)
	}
	s.SetNotes(c.Notes)
	s.SetSupervisionMethod(method)
	for _, p := range c.Supervisors {
		s.AddSupervisorPhoneNumber(p)
	}

	habit, err := s.Save()
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %d)\n", habit.Title, habit.ID)
	fmt.Printf("Schedule: %s\n", cli.FormatSchedule(habit))
	return nil
}

func parseCycle(s string) (models.RepeatCycle, error) {
	switch s {
	case "daily":
		return models.RepeatDaily, nil
	case "weekly":
		return models.RepeatWeekly, nil
	default:
		return "", fmt.Errorf("invalid repeat cycle: %s", s)
	}
}

func parseSupervision(s string) (models.SupervisionMethod, error) {
	switch s {
	case "local":
		return models.SupervisionLocalNotification, nil
	case "sms":
		return models.SupervisionSMSReporting, nil
	default:
		return "", fmt.Errorf("invalid supervision method: %s", s)
	}
}
