package habits

import (
	"fmt"
	"strings"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/constants"
)

type HabitShowCmd struct {
	ID int64 `arg:"" help:"Habit ID."`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Repo().GetHabit(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find habit: %w", err)
	}

	status := "pending"
	if habit.Completed {
		status = "completed"
	}

	fmt.Printf("Habit #%d: %s\n", habit.ID, habit.Title)
	fmt.Printf("  Cycle:       %s\n", habit.RepeatCycle.DisplayName())
	if len(habit.RepeatDays) > 0 {
		names := make([]string, 0, len(habit.RepeatDays))
		for _, d := range habit.RepeatDays {
			if d >= 0 && d < len(constants.WeekdayNames) {
				names = append(names, constants.WeekdayNames[d])
			}
		}
		fmt.Printf("  Days:        %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("  Reminders:   %s\n", strings.Join(habit.ReminderTimes, ", "))
	fmt.Printf("  Supervision: %s\n", cli.FormatSupervision(habit))
	fmt.Printf("  Status:      %s (%d completions)\n", status, habit.CompletionCount)
	fmt.Printf("  Created:     %s\n", habit.CreatedAt.Format("2006-01-02 15:04"))
	if habit.Notes != "" {
		fmt.Printf("  Notes:\n")
		for _, line := range strings.Split(habit.Notes, "\n") {
			fmt.Printf("    %s\n", line)
		}
	}
	return nil
}
