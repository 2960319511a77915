package habits

import (
	"fmt"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/habitlist"
)

type HabitListCmd struct {
	Pending bool `help:"Only show habits not yet completed."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	list := habitlist.New(ctx.Repo())
	if err := list.Load(); err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	habits := list.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitpulse habit add'.")
		return nil
	}

	shown := 0
	for _, h := range habits {
		if c.Pending && h.Completed {
			continue
		}
		mark := " "
		if h.Completed {
			mark = "✓"
		}
		fmt.Printf("[%s] %-4d %s\n", mark, h.ID, h.Title)
		fmt.Printf("         %s | %s | completed %d times\n",
			cli.FormatSchedule(h), cli.FormatSupervision(h), h.CompletionCount)
		shown++
	}
	if shown == 0 {
		fmt.Println("All habits completed.")
	}
	return nil
}
