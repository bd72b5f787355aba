package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jordanwhite/dailydo/internal/backup"
)

type ImportCmd struct {
	File string `arg:"" help:"Path to a dailydo export file." type:"path"`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: Importing replaces all tasks, completions, and streak state.")
		fmt.Printf("\nImport from: %s\n", c.File)
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	// Snapshot the database before the wholesale replace.
	ctx.PerformAutomaticBackup()

	if err := backup.Import(ctx.Store, data); err != nil {
		if errors.Is(err, backup.ErrMalformedRecord) {
			return fmt.Errorf("import aborted, existing data is untouched: %w", err)
		}
		return fmt.Errorf("import failed: %w", err)
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Import complete (%d active tasks).\n", len(tasks))
	return nil
}
