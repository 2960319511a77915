package habits

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}
}

func TestHabitDoneRepeated(t *testing.T) {
	ctx := setupTestContext(t)
	id, err := ctx.Store.InsertHabit(models.Habit{
		Title:             "Morning run",
		RepeatCycle:       models.RepeatDaily,
		SupervisionMethod: models.SupervisionLocalNotification,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	cmd := &HabitDoneCmd{ID: id}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	habit, err := ctx.Store.GetHabit(id)
	if err != nil {
		t.Fatalf("failed to load habit: %v", err)
	}
	if !habit.Completed {
		t.Error("expected habit to be completed")
	}
	if habit.CompletionCount != 1 {
		t.Errorf("expected completion count 1 after repeated done, got %d", habit.CompletionCount)
	}
}

func TestHabitDoneUndoOnPending(t *testing.T) {
	ctx := setupTestContext(t)
	id, err := ctx.Store.InsertHabit(models.Habit{
		Title:             "Read",
		RepeatCycle:       models.RepeatDaily,
		SupervisionMethod: models.SupervisionLocalNotification,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	cmd := &HabitDoneCmd{ID: id, Undo: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("undo on pending habit failed: %v", err)
	}

	habit, err := ctx.Store.GetHabit(id)
	if err != nil {
		t.Fatalf("failed to load habit: %v", err)
	}
	if habit.Completed {
		t.Error("expected habit to stay pending")
	}
	if habit.CompletionCount != 0 {
		t.Errorf("expected completion count 0, got %d", habit.CompletionCount)
	}
}

func TestHabitDoneThenUndoThenDone(t *testing.T) {
	ctx := setupTestContext(t)
	id, err := ctx.Store.InsertHabit(models.Habit{
		Title:             "Stretch",
		RepeatCycle:       models.RepeatDaily,
		SupervisionMethod: models.SupervisionLocalNotification,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}

	if err := (&HabitDoneCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if err := (&HabitDoneCmd{ID: id, Undo: true}).Run(ctx); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if err := (&HabitDoneCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("re-done failed: %v", err)
	}

	habit, err := ctx.Store.GetHabit(id)
	if err != nil {
		t.Fatalf("failed to load habit: %v", err)
	}
	if !habit.Completed {
		t.Error("expected habit to be completed")
	}
	if habit.CompletionCount != 2 {
		t.Errorf("expected completion count 2, got %d", habit.CompletionCount)
	}
}
