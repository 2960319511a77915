package habits

import (
	"testing"
	"time"

	"github.com/ddy/habitpulse/internal/models"
)

func TestHabitShowWithUnknownRepeatDay(t *testing.T) {
	ctx := setupTestContext(t)
	id, err := ctx.Store.InsertHabit(models.Habit{
		Title:             "Gym",
		RepeatCycle:       models.RepeatWeekly,
		RepeatDays:        []int{0, 9},
		ReminderTimes:     []string{"08:00"},
		SupervisionMethod: models.SupervisionLocalNotification,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	cmd := &HabitShowCmd{ID: id}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
}
