package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateList SessionState = iota
	StateForm
	StateConfirmDelete
)

const (
	AppName           = "habitpulse"
	DefaultConfigPath = "~/.config/habitpulse/habitpulse.db"
	Version           = "v0.2.0"
	ProjectURL        = "https://github.com/ddy/habitpulse"

	// TimeFormat is the reminder time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Field limits enforced by the edit session
	TitleMaxLen = 200
	NotesMaxLen = 2000
	PhoneMaxLen = 20

	// Phone numbers must carry between MinPhoneDigits and MaxPhoneDigits digits
	MinPhoneDigits = 10
	MaxPhoneDigits = 15

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitpulse-"
	BackupFileSuffix = ".db"
)

// WeekdayNames maps repeat day indexes (0=Monday .. 6=Sunday) to short labels.
var WeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
