package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/cli/backups"
	"github.com/jordanwhite/dailydo/internal/cli/settings"
	"github.com/jordanwhite/dailydo/internal/cli/system"
	"github.com/jordanwhite/dailydo/internal/cli/tasks"
	"github.com/jordanwhite/dailydo/internal/clock"
	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/logger"
	"github.com/jordanwhite/dailydo/internal/storage"
	"github.com/jordanwhite/dailydo/internal/storage/postgres"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string; use environment variables, .pgpass, or the OS keyring instead." default:"~/.config/dailydo/dailydo.db"`

	Init    system.InitCmd    `cmd:"" help:"Initialize dailydo storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Task    struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks."`
	} `cmd:"" help:"Manage tasks."`
	Restore struct {
		Task tasks.TaskRestoreCmd `cmd:"" help:"Restore a deleted task."`
	} `cmd:"" help:"Restore deleted items."`
	Done   cli.DoneCmd   `cmd:"" help:"Toggle a task's completion for a day."`
	Today  cli.TodayCmd  `cmd:"" help:"Show today's due tasks." default:"1"`
	Stats  cli.StatsCmd  `cmd:"" help:"Show streak and progress statistics."`
	Watch  cli.WatchCmd  `cmd:"" help:"Run the reminder dispatcher until interrupted."`
	Export cli.ExportCmd `cmd:"" help:"Export tasks, completions, and streak state as JSON."`
	Import cli.ImportCmd `cmd:"" help:"Import a previously exported JSON record."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Whatsapp cli.WhatsAppCmd      `cmd:"" help:"Manage the WhatsApp relay."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily recurring-task reminders with streak tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	var store storage.Provider
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if valid, err := postgres.ValidateConnString(CLI.Config); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
				fmt.Fprintln(os.Stderr, "       Keep the password out of the connection string and use the environment or a .pgpass file instead.")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
		initLogger(defaultConfigDir())
	} else {
		path := expandHome(CLI.Config)
		if strings.HasSuffix(path, ".json") {
			store = storage.NewJSONStore(path)
		} else {
			store = storage.NewSQLiteStore(path)
		}
		initLogger(filepath.Dir(path))
	}

	appCtx := &cli.Context{
		Store: store,
		Clock: clock.RealClock{},
	}

	// Init handles its own loading.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(configDir string) {
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func defaultConfigDir() string {
	return filepath.Dir(expandHome(constants.DefaultConfigPath))
}
