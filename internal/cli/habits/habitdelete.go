package habits

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/habitlist"
)

type HabitDeleteCmd struct {
	ID    int64 `arg:"" help:"Habit ID."`
	Force bool  `short:"f" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	repo := ctx.Repo()
	habit, err := repo.GetHabit(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find habit: %w", err)
	}

	if !c.Force {
		fmt.Printf("Delete habit '%s' (ID: %d)? This cannot be undone. [y/N]: ", habit.Title, habit.ID)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	list := habitlist.New(repo)
	if err := list.Delete(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}
