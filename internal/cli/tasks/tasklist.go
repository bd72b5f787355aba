package tasks

import (
	"fmt"
	"sort"

	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/models"
)

type TaskListCmd struct {
	Deleted  bool   `help:"Include deleted tasks."`
	Category string `short:"c" help:"Only show tasks in this category."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	var tasks []models.Task
	var err error
	if c.Deleted {
		tasks, err = ctx.Store.GetAllTasksIncludingDeleted()
	} else {
		tasks, err = ctx.Store.GetAllTasks()
	}
	if err != nil {
		return err
	}

	if c.Category != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Category == models.Category(c.Category) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].ReminderTime != tasks[j].ReminderTime {
			return tasks[i].ReminderTime < tasks[j].ReminderTime
		}
		return tasks[i].Title < tasks[j].Title
	})

	for _, t := range tasks {
		status := ""
		if t.DeletedAt != nil {
			status = " [DELETED]"
		} else if !t.Active {
			status = " [INACTIVE]"
		}
		fmt.Printf("%s  %-9s %-9s %s%s\n", t.ReminderTime, t.Repeat, t.Category, t.Title, status)
		fmt.Printf("       %s\n", t.ID)
		if t.Notes != "" {
			fmt.Printf("       %s\n", t.Notes)
		}
	}

	return nil
}
