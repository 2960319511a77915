package models

import "time"

type RepeatCycle string

const (
	RepeatDaily  RepeatCycle = "DAILY"
	RepeatWeekly RepeatCycle = "WEEKLY"
)

// IsValid checks if the repeat cycle is a known value.
func (c RepeatCycle) IsValid() bool {
	switch c {
	case RepeatDaily, RepeatWeekly:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable label for the cycle.
func (c RepeatCycle) DisplayName() string {
	switch c {
	case RepeatDaily:
		return "Daily"
	case RepeatWeekly:
		return "Weekly"
	default:
		return "Unknown"
	}
}

type SupervisionMethod string

const (
	SupervisionLocalNotification SupervisionMethod = "LOCAL_NOTIFICATION_ONLY"
	SupervisionSMSReporting      SupervisionMethod = "SMS_REPORTING"
)

// IsValid checks if the supervision method is a known value.
func (m SupervisionMethod) IsValid() bool {
	switch m {
	case SupervisionLocalNotification, SupervisionSMSReporting:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable label for the supervision method.
func (m SupervisionMethod) DisplayName() string {
	switch m {
	case SupervisionLocalNotification:
		return "Local notification"
	case SupervisionSMSReporting:
		return "SMS reporting"
	default:
		return "Unknown"
	}
}

// Habit is the persisted record describing a recurring task, its schedule,
// and its supervision configuration. ID 0 means not yet persisted; positive
// values are storage-assigned and stable for the record's lifetime.
type Habit struct {
	ID                     int64             `json:"id"`
	Title                  string            `json:"title"`
	RepeatCycle            RepeatCycle       `json:"repeat_cycle"`
	RepeatDays             []int             `json:"repeat_days,omitempty"` // 0=Monday .. 6=Sunday, weekly only
	ReminderTimes          []string          `json:"reminder_times"`        // HH:MM format, sorted ascending
	Notes                  string            `json:"notes,omitempty"`
	SupervisionMethod      SupervisionMethod `json:"supervision_method"`
	SupervisorPhoneNumbers []string          `json:"supervisor_phone_numbers,omitempty"` // SMS reporting only
	Completed              bool              `json:"completed"`
	CompletionCount        int               `json:"completion_count"`
	CreatedAt              time.Time         `json:"created_at"`
}
