package cli

import (
	"fmt"
	"os"

	"github.com/jordanwhite/dailydo/internal/backup"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the export to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	data, err := backup.ExportJSON(ctx.Store)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", c.Output)
	return nil
}
