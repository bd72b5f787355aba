package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jordanwhite/dailydo/internal/cli"
	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/keyring"
	"github.com/jordanwhite/dailydo/internal/migration"
	"github.com/jordanwhite/dailydo/internal/notifier"
	"github.com/jordanwhite/dailydo/internal/storage"
	"github.com/jordanwhite/dailydo/internal/utils"
	"github.com/jordanwhite/dailydo/migrations"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running dailydo health checks...")
	fmt.Println()

	failures := 0
	report := func(ok bool, label, detail string) {
		mark := "✓"
		if !ok {
			mark = "❌"
			failures++
		}
		fmt.Printf("%s %s", mark, label)
		if detail != "" {
			fmt.Printf(": %s", detail)
		}
		fmt.Println()
	}

	settings, err := ctx.Store.GetSettings()
	report(err == nil, "Storage reachable", errDetail(err))
	if err != nil {
		return errors.New("health checks failed")
	}

	c.checkSchema(ctx, report)

	report(utils.ValidateTimezone(settings.Timezone), "Timezone", settings.Timezone)
	report(settings.TickIntervalSec >= 1, "Tick interval",
		fmt.Sprintf("%d sec", settings.TickIntervalSec))

	c.checkNotifications(settings.NotificationsEnabled, report)
	c.checkWhatsApp(settings.WhatsAppEnabled, settings.WhatsAppPhone, report)

	fmt.Println()
	if failures > 0 {
		return fmt.Errorf("%d health check(s) failed", failures)
	}
	fmt.Println("All checks passed.")
	return nil
}

func (c *DoctorCmd) checkSchema(ctx *cli.Context, report func(bool, string, string)) {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return
	}
	db := sqliteStore.GetDB()
	if db == nil {
		report(false, "Schema version", "database connection is nil")
		return
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		report(false, "Schema version", err.Error())
		return
	}
	runner := migration.NewRunner(db, subFS)
	current, err := runner.CurrentVersion()
	if err != nil {
		report(false, "Schema version", err.Error())
		return
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		report(false, "Schema version", err.Error())
		return
	}
	detail := fmt.Sprintf("%d (latest %d)", current, latest)
	if current < latest {
		detail += " - run 'dailydo migrate'"
	}
	report(current >= latest, "Schema version", detail)
}

func (c *DoctorCmd) checkNotifications(enabled bool, report func(bool, string, string)) {
	if !enabled {
		report(true, "Desktop notifications", "disabled")
		return
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		report(false, "Desktop notifications", err.Error())
		return
	}
	lockfile := filepath.Join(configDir, constants.TrayAppIdentifier, constants.NotifierLockfileName)
	if _, err := os.Stat(lockfile); err != nil {
		report(false, "Desktop notifications", "tray app is not running (no lockfile)")
		return
	}
	report(true, "Desktop notifications", "tray app lockfile present")
}

func (c *DoctorCmd) checkWhatsApp(enabled bool, phone string, report func(bool, string, string)) {
	if !enabled {
		report(true, "WhatsApp relay", "disabled")
		return
	}

	if err := notifier.ValidatePhone(phone); err != nil {
		report(false, "WhatsApp relay", err.Error())
		return
	}
	if _, err := keyring.GetWhatsAppKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			report(false, "WhatsApp relay", "no API key stored (run 'dailydo whatsapp set-key')")
		} else {
			report(false, "WhatsApp relay", err.Error())
		}
		return
	}
	report(true, "WhatsApp relay", phone)
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
