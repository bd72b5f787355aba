package models

import (
	"testing"
	"time"
)

func TestTask_Validate(t *testing.T) {
	valid := Task{
		ID:           "test-id",
		Title:        "Morning reading",
		Category:     CategoryReading,
		ReminderTime: "09:00",
		Repeat:       RepeatDaily,
		Created:      time.Now(),
		Active:       true,
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{
			name:    "valid task",
			mutate:  func(*Task) {},
			wantErr: false,
		},
		{
			name:    "empty id",
			mutate:  func(task *Task) { task.ID = "" },
			wantErr: true,
		},
		{
			name:    "empty title",
			mutate:  func(task *Task) { task.Title = "" },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(task *Task) { task.Category = "chores" },
			wantErr: true,
		},
		{
			name:    "invalid reminder time",
			mutate:  func(task *Task) { task.ReminderTime = "25:00" },
			wantErr: true,
		},
		{
			name:    "missing reminder time",
			mutate:  func(task *Task) { task.ReminderTime = "" },
			wantErr: true,
		},
		{
			name:    "unknown repeat",
			mutate:  func(task *Task) { task.Repeat = "fortnightly" },
			wantErr: true,
		},
		{
			name:    "zero created",
			mutate:  func(task *Task) { task.Created = time.Time{} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := task.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Task.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTask_IsDueOn(t *testing.T) {
	created := time.Date(2026, 8, 5, 14, 30, 0, 0, time.UTC) // a Wednesday

	tests := []struct {
		name   string
		repeat Repeat
		day    string
		want   bool
	}{
		{"daily weekday", RepeatDaily, "2026-08-10", true},
		{"daily weekend", RepeatDaily, "2026-08-09", true},
		{"weekdays on monday", RepeatWeekdays, "2026-08-10", true},
		{"weekdays on friday", RepeatWeekdays, "2026-08-14", true},
		{"weekdays on saturday", RepeatWeekdays, "2026-08-08", false},
		{"weekdays on sunday", RepeatWeekdays, "2026-08-09", false},
		{"weekends on saturday", RepeatWeekends, "2026-08-08", true},
		{"weekends on sunday", RepeatWeekends, "2026-08-09", true},
		{"weekends on tuesday", RepeatWeekends, "2026-08-11", false},
		{"weekly on creation day", RepeatWeekly, "2026-08-05", true},
		{"weekly one day after", RepeatWeekly, "2026-08-06", false},
		{"weekly seven days after", RepeatWeekly, "2026-08-12", true},
		{"weekly fourteen days after", RepeatWeekly, "2026-08-19", true},
		{"weekly six days after", RepeatWeekly, "2026-08-11", false},
		{"weekly seven days before creation", RepeatWeekly, "2026-07-29", true},
		{"weekly three days before creation", RepeatWeekly, "2026-08-02", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{
				ID:           "test-id",
				Title:        "Test",
				Category:     CategoryOther,
				ReminderTime: "08:00",
				Repeat:       tt.repeat,
				Created:      created,
				Active:       true,
			}
			if got := task.IsDueOn(tt.day); got != tt.want {
				t.Errorf("IsDueOn(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestTask_IsDueOn_WeeklyEverySeventhDay(t *testing.T) {
	created := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)
	task := Task{
		ID:           "test-id",
		Title:        "Weekly review",
		Category:     CategoryWork,
		ReminderTime: "09:00",
		Repeat:       RepeatWeekly,
		Created:      created,
		Active:       true,
	}

	for offset := 0; offset < 28; offset++ {
		day := created.AddDate(0, 0, offset).Format("2006-01-02")
		want := offset%7 == 0
		if got := task.IsDueOn(day); got != want {
			t.Errorf("IsDueOn(created+%dd) = %v, want %v", offset, got, want)
		}
	}
}

func TestTask_IsDueOn_Inactive(t *testing.T) {
	task := Task{
		ID:           "test-id",
		Title:        "Paused",
		Category:     CategoryOther,
		ReminderTime: "08:00",
		Repeat:       RepeatDaily,
		Created:      time.Now(),
		Active:       false,
	}
	if task.IsDueOn("2026-08-10") {
		t.Error("inactive task must never be due")
	}
}

func TestTask_IsDueOn_MalformedDay(t *testing.T) {
	task := Task{
		ID:           "test-id",
		Title:        "Test",
		Category:     CategoryOther,
		ReminderTime: "08:00",
		Repeat:       RepeatDaily,
		Created:      time.Now(),
		Active:       true,
	}
	if task.IsDueOn("08/10/2026") {
		t.Error("malformed date key must not be due")
	}
}

func TestDueOn(t *testing.T) {
	created := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)
	tasks := []Task{
		{ID: "a", Title: "A", Category: CategoryOther, ReminderTime: "08:00", Repeat: RepeatDaily, Created: created, Active: true},
		{ID: "b", Title: "B", Category: CategoryOther, ReminderTime: "08:00", Repeat: RepeatWeekends, Created: created, Active: true},
		{ID: "c", Title: "C", Category: CategoryOther, ReminderTime: "08:00", Repeat: RepeatDaily, Created: created, Active: false},
	}

	due := DueOn(tasks, "2026-08-10") // a Monday
	if len(due) != 1 || due[0].ID != "a" {
		t.Errorf("DueOn() = %v tasks, want only task a", len(due))
	}
}
