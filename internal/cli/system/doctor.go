package system

import (
	"fmt"
	"os"
	"sort"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/ddy/habitpulse/internal/backup"
	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Printf("%s %s: running diagnostics\n\n", constants.AppName, constants.Version)

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Habit integrity
	if dbReachable {
		if err := checkHabitIntegrity(ctx); err != nil {
			fmt.Printf("⚠ Habit integrity: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Habit integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit integrity: SKIPPED (database not reachable)\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Concurrent processes (warning only)
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Println("All diagnostics passed.")
	fmt.Printf("Project: %s\n", constants.ProjectURL)
	return nil
}

// checkHabitIntegrity verifies the stored records satisfy the data model's
// cross-field rules.
func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	var problems []string
	for _, h := range habits {
		if strings.TrimSpace(h.Title) == "" {
			problems = append(problems, fmt.Sprintf("habit %d has a blank title", h.ID))
		}
		if !h.RepeatCycle.IsValid() {
			problems = append(problems, fmt.Sprintf("habit %d has unknown repeat cycle %q", h.ID, h.RepeatCycle))
		}
		if h.RepeatCycle == models.RepeatWeekly && len(h.RepeatDays) == 0 {
			problems = append(problems, fmt.Sprintf("habit %d is weekly but has no repeat days", h.ID))
		}
		if h.RepeatCycle == models.RepeatDaily && len(h.RepeatDays) > 0 {
			problems = append(problems, fmt.Sprintf("habit %d is daily but has repeat days", h.ID))
		}
		if !sort.StringsAreSorted(h.ReminderTimes) {
			problems = append(problems, fmt.Sprintf("habit %d has unsorted reminder times", h.ID))
		}
		for _, t := range h.ReminderTimes {
			if !validation.IsValidTimeFormat(t) {
				problems = append(problems, fmt.Sprintf("habit %d has invalid reminder time %q", h.ID, t))
			}
		}
		if h.SupervisionMethod == models.SupervisionSMSReporting {
			if len(h.SupervisorPhoneNumbers) == 0 {
				problems = append(problems, fmt.Sprintf("habit %d uses SMS reporting but has no supervisors", h.ID))
			}
			for _, p := range h.SupervisorPhoneNumbers {
				if !validation.IsPhoneValid(p) {
					problems = append(problems, fmt.Sprintf("habit %d has invalid supervisor phone %q", h.ID, p))
				}
			}
		} else if len(h.SupervisorPhoneNumbers) > 0 {
			problems = append(problems, fmt.Sprintf("habit %d has supervisors without SMS reporting", h.ID))
		}
		if h.CompletionCount < 0 {
			problems = append(problems, fmt.Sprintf("habit %d has a negative completion count", h.ID))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d issue(s) found:\n   %s", len(problems), strings.Join(problems, "\n   "))
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider running 'habitpulse backup create'")
	}
	return nil
}

// checkConcurrentProcesses warns when another habitpulse process may be
// holding the database.
func checkConcurrentProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (pid %d); concurrent access can corrupt the database", constants.AppName, p.Pid())
		}
	}
	return nil
}
