package utils

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 8, 10, 23, 59, 0, 0, time.UTC)
	if got := DateKey(ts); got != "2026-08-10" {
		t.Errorf("DateKey() = %q, want %q", got, "2026-08-10")
	}
}

func TestMinuteKey(t *testing.T) {
	ts := time.Date(2026, 8, 10, 9, 5, 42, 0, time.UTC)
	if got := MinuteKey(ts); got != "09:05" {
		t.Errorf("MinuteKey() = %q, want %q", got, "09:05")
	}
}

func TestPrevDay(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2026-08-10", "2026-08-09"},
		{"2026-08-01", "2026-07-31"},
		{"2026-01-01", "2025-12-31"},
		{"2026-03-01", "2026-02-28"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"not-a-date", ""},
	}
	for _, tt := range tests {
		if got := PrevDay(tt.day); got != tt.want {
			t.Errorf("PrevDay(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2026-08-09", "2026-08-10"},
		{"2026-12-31", "2027-01-01"},
		{"2024-02-28", "2024-02-29"}, // leap year
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := NextDay(tt.day); got != tt.want {
			t.Errorf("NextDay(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestValidateTimeFormat(t *testing.T) {
	tests := []struct {
		timeStr string
		want    bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:00am", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateTimeFormat(tt.timeStr); got != tt.want {
			t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tt.timeStr, got, tt.want)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		timezone string
		want     bool
	}{
		{"", true},
		{"Local", true},
		{"UTC", true},
		{"America/New_York", true},
		{"Not/AZone", false},
	}
	for _, tt := range tests {
		if got := ValidateTimezone(tt.timezone); got != tt.want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.timezone, got, tt.want)
		}
	}
}
