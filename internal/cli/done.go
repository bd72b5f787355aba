package cli

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/streak"
	"github.com/jordanwhite/dailydo/internal/utils"
)

type DoneCmd struct {
	ID   string `arg:"" help:"Task ID to toggle."`
	Date string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day, err = ctx.Today()
		if err != nil {
			return err
		}
	} else if _, err := utils.ParseDate(day); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	done, err := isComplete(ctx, day, task.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.SetCompletion(day, task.ID, !done); err != nil {
		return err
	}

	if done {
		fmt.Printf("Unmarked %q for %s\n", task.Title, day)
	} else {
		fmt.Printf("✓ Completed %q for %s\n", task.Title, day)
	}

	return advanceStreak(ctx)
}

// advanceStreak re-evaluates today's streak after a completion toggle and
// persists the state when it changed.
func advanceStreak(ctx *Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	l, err := ctx.LoadLedger()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetStreak()
	if err != nil {
		return err
	}

	next := streak.Advance(today, tasks, l, state)
	if next == state {
		return nil
	}
	if err := ctx.Store.SaveStreak(next); err != nil {
		return err
	}
	if next.LastQualifyingDate == today && state.LastQualifyingDate != today {
		fmt.Printf("🔥 Streak: %d day(s)\n", next.Count)
	}
	return nil
}

func isComplete(ctx *Context, day, taskID string) (bool, error) {
	ids, err := ctx.Store.GetCompletionsForDay(day)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == taskID {
			return true, nil
		}
	}
	return false, nil
}
