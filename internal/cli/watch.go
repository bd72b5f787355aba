package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jordanwhite/dailydo/internal/dispatcher"
	"github.com/jordanwhite/dailydo/internal/keyring"
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/notifier"
	"github.com/jordanwhite/dailydo/internal/storage"
)

type WatchCmd struct {
	Interval int `short:"i" help:"Tick interval in seconds. Overrides the configured value."`
}

func (c *WatchCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	var sinks []notifier.Sink
	if settings.NotificationsEnabled {
		sinks = append(sinks, notifier.NewDesktop())
	}
	if settings.WhatsAppEnabled {
		wa, err := whatsAppSink(settings)
		if err != nil {
			return err
		}
		sinks = append(sinks, wa)
	}
	if len(sinks) == 0 {
		return errors.New("no notification channels enabled; enable one with 'dailydo settings'")
	}

	interval := time.Duration(settings.TickIntervalSec) * time.Second
	if c.Interval > 0 {
		interval = time.Duration(c.Interval) * time.Second
	}

	d := dispatcher.New(storeState{ctx.Store}, notifier.NewMulti(sinks...), ctx.Clock, interval)
	d.Start()
	fmt.Printf("Watching for reminders (tick every %s). Press Ctrl+C to stop.\n", interval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping...")
	d.Stop()
	return nil
}

func whatsAppSink(settings models.Settings) (notifier.Sink, error) {
	if settings.WhatsAppPhone == "" {
		return nil, errors.New("whatsapp is enabled but no phone number is configured (set one with 'dailydo settings --whatsapp-phone')")
	}
	key, err := keyring.GetWhatsAppKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, errors.New("whatsapp is enabled but no API key is stored (run 'dailydo whatsapp set-key')")
		}
		return nil, err
	}
	return notifier.NewWhatsApp(settings.WhatsAppPhone, key)
}

// storeState adapts the store to the dispatcher's read-only view of tasks
// and completions.
type storeState struct {
	store storage.Provider
}

func (s storeState) ActiveTasks() ([]models.Task, error) {
	return s.store.GetAllTasks()
}

func (s storeState) IsComplete(day, taskID string) bool {
	ids, err := s.store.GetCompletionsForDay(day)
	if err != nil {
		return false
	}
	for _, id := range ids {
		if id == taskID {
			return true
		}
	}
	return false
}
