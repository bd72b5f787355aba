package dispatcher

import (
	"sync"
	"time"

	"github.com/jordanwhite/dailydo/internal/clock"
	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/logger"
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/notifier"
	"github.com/jordanwhite/dailydo/internal/utils"
)

// State supplies the dispatcher's view of the task collection and the
// completion ledger. Implementations are read-only from the dispatcher's
// perspective.
type State interface {
	ActiveTasks() ([]models.Task, error)
	IsComplete(day, taskID string) bool
}

// Dispatcher walks active tasks once per tick and delivers a reminder for
// every task whose reminder time matches the current minute, is due today,
// and has not been completed today. Each task fires at most once per
// matching minute even if multiple scans land in the same minute. Sink
// failures are logged and never abort the remaining scan.
type Dispatcher struct {
	state    State
	sink     notifier.Sink
	clk      clock.Clock
	interval time.Duration

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// notified tracks task ids already fired during notifiedMinute.
	notified       map[string]bool
	notifiedMinute string
}

func New(state State, sink notifier.Sink, clk clock.Clock, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = constants.DefaultTickInterval
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Dispatcher{
		state:    state,
		sink:     sink,
		clk:      clk,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		notified: make(map[string]bool),
	}
}

// Start launches the tick loop. One scan runs immediately; subsequent scans
// run every tick interval until Stop is called. Start is a no-op when the
// dispatcher is already running.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}
	d.started = true
	d.mu.Unlock()

	go d.loop()
}

// Stop halts future ticks and waits for any in-flight scan to finish, so a
// scan is never left half done. Stop is a no-op when the dispatcher was
// never started or is already stopped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.started || d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.stopCh)
	d.mu.Unlock()
	<-d.doneCh
}

func (d *Dispatcher) loop() {
	defer close(d.doneCh)

	d.Tick()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.Tick()
		case <-d.stopCh:
			return
		}
	}
}

// Tick runs a single scan at the clock's current time. It is exported so a
// host (or a test) can drive the dispatcher without the internal ticker.
func (d *Dispatcher) Tick() {
	now := d.clk.Now()
	due := d.ScanAt(now)
	if len(due) == 0 {
		return
	}

	minute := utils.DateKey(now) + " " + utils.MinuteKey(now)

	d.mu.Lock()
	if d.notifiedMinute != minute {
		d.notifiedMinute = minute
		d.notified = make(map[string]bool)
	}
	var fire []models.Task
	for _, t := range due {
		if !d.notified[t.ID] {
			d.notified[t.ID] = true
			fire = append(fire, t)
		}
	}
	d.mu.Unlock()

	for _, t := range fire {
		if err := d.sink.Notify(t); err != nil {
			logger.Warn("Reminder delivery failed", "task", t.ID, "title", t.Title, "error", err)
		}
	}
}

// ScanAt is the pure "what fires right now" query: the tasks whose
// reminder time equals now truncated to the minute, that are due on now's
// calendar day, and that are not yet completed today. It performs no
// deduplication and no delivery.
func (d *Dispatcher) ScanAt(now time.Time) []models.Task {
	tasks, err := d.state.ActiveTasks()
	if err != nil {
		logger.Error("Failed to load tasks for reminder scan", "error", err)
		return nil
	}

	day := utils.DateKey(now)
	minute := utils.MinuteKey(now)

	var due []models.Task
	for _, t := range tasks {
		if !t.Active {
			continue
		}
		if t.ReminderTime != minute {
			continue
		}
		if !t.IsDueOn(day) {
			continue
		}
		if d.state.IsComplete(day, t.ID) {
			continue
		}
		due = append(due, t)
	}
	return due
}
