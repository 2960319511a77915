package habits

import (
	"fmt"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/habitlist"
)

type HabitDoneCmd struct {
	ID   int64 `arg:"" help:"Habit ID."`
	Undo bool  `short:"u" help:"Mark the habit as not completed instead."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	repo := ctx.Repo()
	habit, err := repo.GetHabit(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find habit: %w", err)
	}

	// The count only moves on an actual state change.
	if !c.Undo && habit.Completed {
		fmt.Printf("Habit already completed: %s (%d completions)\n", habit.Title, habit.CompletionCount)
		return nil
	}
	if c.Undo && !habit.Completed {
		fmt.Printf("Habit is not completed: %s\n", habit.Title)
		return nil
	}

	list := habitlist.New(repo)
	if err := list.SetCompleted(c.ID, !c.Undo); err != nil {
		return err
	}

	if c.Undo {
		fmt.Printf("Reopened habit: %s\n", habit.Title)
		return nil
	}

	fmt.Printf("Completed habit: %s (%d completions)\n", habit.Title, habit.CompletionCount+1)
	return nil
}
