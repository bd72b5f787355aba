package cli

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/backup"
	"github.com/jordanwhite/dailydo/internal/clock"
	"github.com/jordanwhite/dailydo/internal/ledger"
	"github.com/jordanwhite/dailydo/internal/logger"
	"github.com/jordanwhite/dailydo/internal/storage"
	"github.com/jordanwhite/dailydo/internal/utils"
)

type Context struct {
	Store storage.Provider
	Clock clock.Clock
}

// Today returns the current date key (YYYY-MM-DD) in the configured
// timezone.
func (c *Context) Today() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return utils.DateKey(c.Clock.Now().In(loc)), nil
}

// LoadLedger materializes the completion ledger from the store.
func (c *Context) LoadLedger() (*ledger.Ledger, error) {
	completions, err := c.Store.GetAllCompletions()
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	return ledger.FromSnapshot(completions), nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	// File backups only apply to SQLite storage.
	if c.Store.GetConfigPath() == "postgresql" {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
