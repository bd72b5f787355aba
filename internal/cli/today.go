package cli

import (
	"fmt"
	"sort"

	"github.com/jordanwhite/dailydo/internal/models"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	day, err := ctx.Today()
	if err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	due := models.DueOn(tasks, day)
	if len(due) == 0 {
		fmt.Printf("No tasks due on %s.\n", day)
		return nil
	}

	completed := make(map[string]bool)
	ids, err := ctx.Store.GetCompletionsForDay(day)
	if err != nil {
		return err
	}
	for _, id := range ids {
		completed[id] = true
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].ReminderTime < due[j].ReminderTime
	})

	fmt.Printf("Tasks for %s:\n\n", day)
	doneCount := 0
	for _, t := range due {
		checkbox := "[ ]"
		if completed[t.ID] {
			checkbox = "[x]"
			doneCount++
		}
		fmt.Printf("  %s %s  %s (%s)\n", checkbox, t.ReminderTime, t.Title, t.Category)
	}
	fmt.Printf("\n%d/%d complete\n", doneCount, len(due))

	return nil
}
