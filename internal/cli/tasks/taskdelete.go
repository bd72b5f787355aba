package tasks

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Deleted task: %s\n", task.Title)
	fmt.Printf("Restore it with: dailydo restore task %s\n", task.ID)
	return nil
}
