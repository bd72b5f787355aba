package tasks

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/models"
)

type TaskEditCmd struct {
	ID       string  `arg:"" help:"Task ID to edit."`
	Title    *string `help:"New title."`
	Time     *string `short:"t" help:"New reminder time (HH:MM)."`
	Category *string `short:"c" help:"New category."`
	Repeat   *string `short:"r" help:"New repeat frequency."`
	Notes    *string `short:"n" help:"New notes. Pass an empty string to clear them."`
	Active   *bool   `help:"Activate or deactivate the task."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	updated := false
	if c.Title != nil {
		task.Title = *c.Title
		updated = true
	}
	if c.Time != nil {
		task.ReminderTime = *c.Time
		updated = true
	}
	if c.Category != nil {
		task.Category = models.Category(*c.Category)
		updated = true
	}
	if c.Repeat != nil {
		task.Repeat = models.Repeat(*c.Repeat)
		updated = true
	}
	if c.Notes != nil {
		task.Notes = *c.Notes
		updated = true
	}
	if c.Active != nil {
		task.Active = *c.Active
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use flags to update task fields.")
		return nil
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}
