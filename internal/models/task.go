package models

import (
	"fmt"
	"time"

	"github.com/jordanwhite/dailydo/internal/constants"
)

type Category string

const (
	CategoryReading  Category = "reading"
	CategoryExercise Category = "exercise"
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories lists every valid task category, in display order.
func Categories() []Category {
	return []Category{
		CategoryReading, CategoryExercise, CategoryWork,
		CategoryStudy, CategoryPersonal, CategoryHealth, CategoryOther,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryReading, CategoryExercise, CategoryWork,
		CategoryStudy, CategoryPersonal, CategoryHealth, CategoryOther:
		return true
	default:
		return false
	}
}

type Repeat string

const (
	RepeatDaily    Repeat = "daily"
	RepeatWeekdays Repeat = "weekdays"
	RepeatWeekends Repeat = "weekends"
	RepeatWeekly   Repeat = "weekly"
)

func (r Repeat) IsValid() bool {
	switch r {
	case RepeatDaily, RepeatWeekdays, RepeatWeekends, RepeatWeekly:
		return true
	default:
		return false
	}
}

type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     Category  `json:"category"`
	ReminderTime string    `json:"reminder_time"` // HH:MM format
	Repeat       Repeat    `json:"repeat"`
	Notes        string    `json:"notes,omitempty"`
	Created      time.Time `json:"created"`
	Active       bool      `json:"active"`
	DeletedAt    *string   `json:"deleted_at,omitempty"` // RFC3339 timestamp
}

func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id cannot be empty")
	}
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("invalid category: %q", t.Category)
	}
	if _, err := time.Parse(constants.TimeFormat, t.ReminderTime); err != nil {
		return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
	}
	if !t.Repeat.IsValid() {
		return fmt.Errorf("invalid repeat frequency: %q", t.Repeat)
	}
	if t.Created.IsZero() {
		return fmt.Errorf("task created timestamp cannot be zero")
	}
	return nil
}

// IsDueOn reports whether the task's repeat rule selects the given day
// (YYYY-MM-DD). Inactive tasks are never due. Malformed date keys are
// treated as not due rather than panicking.
func (t *Task) IsDueOn(day string) bool {
	if !t.Active {
		return false
	}

	date, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return false
	}

	switch t.Repeat {
	case RepeatDaily:
		return true
	case RepeatWeekdays:
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case RepeatWeekends:
		wd := date.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case RepeatWeekly:
		// Due every 7th day counted from the creation date, including the
		// creation date itself. Days before creation are normalized into
		// the same 7-day phase so the check never misbehaves on negative
		// offsets.
		created := time.Date(t.Created.Year(), t.Created.Month(), t.Created.Day(), 0, 0, 0, 0, time.UTC)
		days := int(date.Sub(created).Hours() / 24)
		return ((days%7)+7)%7 == 0
	default:
		return true
	}
}

// DueOn filters tasks down to those due on the given day.
func DueOn(tasks []Task, day string) []Task {
	var due []Task
	for _, t := range tasks {
		if t.IsDueOn(day) {
			due = append(due, t)
		}
	}
	return due
}
