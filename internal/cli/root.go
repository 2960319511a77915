package cli

import (
	"fmt"
	"strings"

	"github.com/ddy/habitpulse/internal/backup"
	"github.com/ddy/habitpulse/internal/constants"
	"github.com/ddy/habitpulse/internal/logger"
	"github.com/ddy/habitpulse/internal/models"
	"github.com/ddy/habitpulse/internal/repository"
	"github.com/ddy/habitpulse/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Repo returns the repository façade over the configured store.
func (c *Context) Repo() *repository.HabitRepository {
	return repository.New(c.Store)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatSchedule formats a habit's repeat configuration into a human-readable
// string, e.g. "daily at 07:00, 21:30" or "weekly on Mon, Wed at 08:00".
func FormatSchedule(h models.Habit) string {
	switch h.RepeatCycle {
	case models.RepeatDaily:
		if len(h.ReminderTimes) == 0 {
			return "daily"
		}
		return fmt.Sprintf("daily at %s", strings.Join(h.ReminderTimes, ", "))
	case models.RepeatWeekly:
		days := make([]string, 0, len(h.RepeatDays))
		for _, d := range h.RepeatDays {
			if d >= 0 && d < len(constants.WeekdayNames) {
				days = append(days, constants.WeekdayNames[d])
			}
		}
		label := fmt.Sprintf("weekly on %s", strings.Join(days, ", "))
		if len(h.ReminderTimes) > 0 {
			label += fmt.Sprintf(" at %s", h.ReminderTimes[0])
		}
		return label
	default:
		return "unknown"
	}
}

// ParseRepeatDays parses a comma-separated list of weekdays into repeat day
// indexes (0=Monday .. 6=Sunday). Accepts names, three-letter abbreviations,
// and bare indexes.
func ParseRepeatDays(s string) ([]int, error) {
	dayMap := map[string]int{
		"mon": 0, "monday": 0,
		"tue": 1, "tuesday": 1,
		"wed": 2, "wednesday": 2,
		"thu": 3, "thursday": 3,
		"fri": 4, "friday": 4,
		"sat": 5, "saturday": 5,
		"sun": 6, "sunday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		if len(part) == 1 && part[0] >= '0' && part[0] <= '6' {
			days = append(days, int(part[0]-'0'))
			continue
		}
		return nil, fmt.Errorf("invalid weekday: %s", part)
	}
	return days, nil
}

// FormatSupervision formats a habit's supervision configuration.
func FormatSupervision(h models.Habit) string {
	if h.SupervisionMethod == models.SupervisionSMSReporting && len(h.SupervisorPhoneNumbers) > 0 {
		return fmt.Sprintf("%s (%s)", h.SupervisionMethod.DisplayName(),
			strings.Join(h.SupervisorPhoneNumbers, ", "))
	}
	return h.SupervisionMethod.DisplayName()
}
