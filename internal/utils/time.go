package utils

import (
	"fmt"
	"time"

	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/models"
)

// DateKey returns the calendar-day identifier (YYYY-MM-DD) for a timestamp.
// The key is taken in the timestamp's own location, so "today" follows the
// caller's timezone rather than UTC.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// MinuteKey returns the time-of-day (HH:MM) for a timestamp, truncated to
// the minute.
func MinuteKey(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// ParseDate parses a date key (YYYY-MM-DD) into a UTC midnight time.
func ParseDate(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// PrevDay returns the date key of the calendar day before the given one.
// Returns an empty string when the key is malformed.
func PrevDay(day string) string {
	d, err := ParseDate(day)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// NextDay returns the date key of the calendar day after the given one.
// Returns an empty string when the key is malformed.
func NextDay(day string) string {
	d, err := ParseDate(day)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, 1).Format(constants.DateFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// GetTodayFromSettings returns today's date key using the timezone from settings.
func GetTodayFromSettings(settings models.Settings) (string, error) {
	now, err := NowInTimezone(settings.Timezone)
	if err != nil {
		return "", err
	}
	return DateKey(now), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
