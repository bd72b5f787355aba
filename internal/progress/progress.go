package progress

import (
	"time"

	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/ledger"
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/utils"
)

// WindowProgress computes the completion ratio over [start, end] inclusive
// as a percentage (0-100). For each day in the window, every due task
// counts toward the total; a recorded completion counts only when its task
// is actually due that day, so stale ledger entries for deleted or
// rescheduled tasks never inflate the ratio. Returns 0 when the window
// contains no due-task days or when either bound is malformed.
func WindowProgress(start, end string, tasks []models.Task, l *ledger.Ledger) float64 {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return 0
	}
	endDate, err := utils.ParseDate(end)
	if err != nil {
		return 0
	}

	totalDue := 0
	totalCompleted := 0

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		day := d.Format(constants.DateFormat)
		for _, t := range tasks {
			if !t.IsDueOn(day) {
				continue
			}
			totalDue++
			if l.IsComplete(day, t.ID) {
				totalCompleted++
			}
		}
	}

	if totalDue == 0 {
		return 0
	}
	return float64(totalCompleted) / float64(totalDue) * 100
}

// WeekWindow returns the date keys bounding the 7-day week containing the
// given day. Weeks are anchored on Sunday regardless of locale.
func WeekWindow(day string) (string, string, error) {
	d, err := utils.ParseDate(day)
	if err != nil {
		return "", "", err
	}
	start := d.AddDate(0, 0, -int(d.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start.Format(constants.DateFormat), end.Format(constants.DateFormat), nil
}

// MonthWindow returns the date keys bounding the full calendar month
// containing the given day, regardless of how much of the month has
// elapsed.
func MonthWindow(day string) (string, string, error) {
	d, err := utils.ParseDate(day)
	if err != nil {
		return "", "", err
	}
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format(constants.DateFormat), end.Format(constants.DateFormat), nil
}

// WeekProgress is a convenience wrapper computing WindowProgress over the
// week containing the given day.
func WeekProgress(day string, tasks []models.Task, l *ledger.Ledger) float64 {
	start, end, err := WeekWindow(day)
	if err != nil {
		return 0
	}
	return WindowProgress(start, end, tasks, l)
}

// MonthProgress is a convenience wrapper computing WindowProgress over the
// calendar month containing the given day.
func MonthProgress(day string, tasks []models.Task, l *ledger.Ledger) float64 {
	start, end, err := MonthWindow(day)
	if err != nil {
		return 0
	}
	return WindowProgress(start, end, tasks, l)
}
