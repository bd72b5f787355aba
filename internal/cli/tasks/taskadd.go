package tasks

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/utils"
)

type TaskAddCmd struct {
	Title    string `arg:"" optional:"" help:"Task title. Omit to fill in the details interactively."`
	Time     string `short:"t" help:"Reminder time (HH:MM)."`
	Category string `short:"c" help:"Category (reading|exercise|work|study|personal|health|other)." default:"other"`
	Repeat   string `short:"r" help:"Repeat frequency (daily|weekdays|weekends|weekly)." default:"daily"`
	Notes    string `short:"n" help:"Optional notes."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if c.Title == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	if c.Time == "" {
		return fmt.Errorf("reminder time is required (use --time HH:MM)")
	}

	task := models.Task{
		ID:           uuid.New().String(),
		Title:        c.Title,
		Category:     models.Category(c.Category),
		ReminderTime: c.Time,
		Repeat:       models.Repeat(c.Repeat),
		Notes:        c.Notes,
		Created:      ctx.Clock.Now(),
		Active:       true,
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

func (c *TaskAddCmd) promptForm() error {
	categories := models.Categories()
	categoryOptions := make([]huh.Option[string], 0, len(categories))
	for _, cat := range categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), string(cat)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}).
				Value(&c.Title),
			huh.NewInput().
				Title("Reminder time (HH:MM)").
				Validate(func(s string) error {
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("expected HH:MM")
					}
					return nil
				}).
				Value(&c.Time),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Repeat").
				Options(
					huh.NewOption("daily", "daily"),
					huh.NewOption("weekdays", "weekdays"),
					huh.NewOption("weekends", "weekends"),
					huh.NewOption("weekly", "weekly"),
				).
				Value(&c.Repeat),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&c.Notes),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	return nil
}
