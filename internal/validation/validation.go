package validation

import (
	"strings"
	"time"

	"github.com/ddy/habitpulse/internal/constants"
)

// IsPhoneValid reports whether a candidate supervisor phone number is
// acceptable: 10-15 characters after trimming, only digits, spaces, '+',
// '-', '(' and ')', and 10-15 digit characters overall.
func IsPhoneValid(candidate string) bool {
	phone := strings.TrimSpace(candidate)

	if len(phone) < constants.MinPhoneDigits || len(phone) > constants.MaxPhoneDigits {
		return false
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= constants.MinPhoneDigits && digits <= constants.MaxPhoneDigits
}

// IsValidTimeFormat reports whether a string is a valid HH:MM reminder time.
func IsValidTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
