package tasks

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/cli"
)

type TaskRestoreCmd struct {
	ID string `arg:"" help:"Task ID to restore."`
}

func (c *TaskRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreTask(c.ID); err != nil {
		return err
	}

	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Restored task: %s\n", task.Title)
	return nil
}
