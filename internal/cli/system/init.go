package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jordanwhite/dailydo/internal/backup"
	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/storage"
	"github.com/jordanwhite/dailydo/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.deleteExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized dailydo storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx, c.Source); err != nil {
			return fmt.Errorf("data copy failed: %w", err)
		}
		fmt.Println("Data copied successfully.")
	}

	return nil
}

func (c *InitCmd) deleteExisting(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if dbPath == "postgresql" {
		return errors.New("--force is only supported for file-backed storage")
	}

	// Guard against deleting the source we are about to copy from.
	if c.Source != "" {
		if absDbPath, err := filepath.Abs(dbPath); err == nil {
			dbPath = absDbPath
		}
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// copyData round-trips the source store's contents through the export
// record, so init --source and export/import share one data path.
func (c *InitCmd) copyData(ctx *cli.Context, sourcePath string) error {
	sourceStore, err := openSourceStore(sourcePath)
	if err != nil {
		return err
	}
	defer sourceStore.Close()

	fmt.Println("  Copying settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("  Copying tasks, completions, and streak state...")
	data, err := backup.ExportJSON(sourceStore)
	if err != nil {
		return fmt.Errorf("failed to export source data: %w", err)
	}
	if err := backup.Import(ctx.Store, data); err != nil {
		return fmt.Errorf("failed to import source data: %w", err)
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	fmt.Printf("  Copied %d active tasks\n", len(tasks))

	return nil
}

func openSourceStore(sourcePath string) (storage.Provider, error) {
	var sourceStore storage.Provider
	switch {
	case strings.HasPrefix(sourcePath, "postgres://") || strings.HasPrefix(sourcePath, "postgresql://"):
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL source connection string contains embedded credentials; use environment variables or .pgpass instead")
			}
			return nil, err
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	case strings.HasSuffix(sourcePath, ".json"):
		sourceStore = storage.NewJSONStore(sourcePath)
	default:
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return nil, fmt.Errorf("failed to load source database: %w", err)
	}
	return sourceStore, nil
}
