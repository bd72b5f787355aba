package dispatcher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jordanwhite/dailydo/internal/clock"
	"github.com/jordanwhite/dailydo/internal/ledger"
	"github.com/jordanwhite/dailydo/internal/models"
)

type memState struct {
	tasks  []models.Task
	ledger *ledger.Ledger
	err    error
}

func (s *memState) ActiveTasks() ([]models.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tasks, nil
}

func (s *memState) IsComplete(day, taskID string) bool {
	return s.ledger.IsComplete(day, taskID)
}

type recordingSink struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *recordingSink) Notify(task models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, task.ID)
	return r.err
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func dailyTask(id, reminderTime string) models.Task {
	return models.Task{
		ID:           id,
		Title:        "Task " + id,
		Category:     models.CategoryOther,
		ReminderTime: reminderTime,
		Repeat:       models.RepeatDaily,
		Created:      time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		Active:       true,
	}
}

func TestTick_FiresAtExactMinute(t *testing.T) {
	state := &memState{
		tasks:  []models.Task{dailyTask("a", "09:00")},
		ledger: ledger.New(),
	}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 30, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()

	if sink.count() != 1 {
		t.Fatalf("notify calls = %d, want 1", sink.count())
	}
}

func TestTick_SameMinuteFiresOnce(t *testing.T) {
	state := &memState{
		tasks:  []models.Task{dailyTask("a", "09:00")},
		ledger: ledger.New(),
	}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()
	clk.Advance(20 * time.Second) // still 09:00
	d.Tick()

	if sink.count() != 1 {
		t.Errorf("notify calls after second scan in same minute = %d, want 1", sink.count())
	}
}

func TestTick_NoRefireNextMinute(t *testing.T) {
	state := &memState{
		tasks:  []models.Task{dailyTask("a", "09:00")},
		ledger: ledger.New(),
	}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()
	clk.Advance(time.Minute) // 09:01, task still incomplete
	d.Tick()

	if sink.count() != 1 {
		t.Errorf("notify calls = %d, want 1 (reminder fires only at exact match)", sink.count())
	}
}

func TestTick_CompletedTaskDoesNotFire(t *testing.T) {
	l := ledger.New()
	l.Toggle("2026-08-10", "a")
	state := &memState{
		tasks:  []models.Task{dailyTask("a", "09:00")},
		ledger: l,
	}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()

	if sink.count() != 0 {
		t.Errorf("notify calls = %d, want 0 for completed task", sink.count())
	}
}

func TestTick_NotDueTaskDoesNotFire(t *testing.T) {
	task := dailyTask("a", "09:00")
	task.Repeat = models.RepeatWeekends
	state := &memState{
		tasks:  []models.Task{task},
		ledger: ledger.New(),
	}
	sink := &recordingSink{}
	// 2026-08-10 is a Monday.
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()

	if sink.count() != 0 {
		t.Errorf("notify calls = %d, want 0 for not-due task", sink.count())
	}
}

func TestTick_SinkFailureDoesNotAbortScan(t *testing.T) {
	state := &memState{
		tasks: []models.Task{
			dailyTask("a", "09:00"),
			dailyTask("b", "09:00"),
		},
		ledger: ledger.New(),
	}
	sink := &recordingSink{err: errors.New("delivery failed")}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()

	if sink.count() != 2 {
		t.Errorf("notify calls = %d, want 2 (failure must not abort the scan)", sink.count())
	}
}

func TestTick_MinuteChangeClearsDedupe(t *testing.T) {
	state := &memState{
		tasks: []models.Task{
			dailyTask("a", "09:00"),
			dailyTask("b", "09:01"),
		},
		ledger: ledger.New(),
	}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	d.Tick()
	clk.Advance(time.Minute)
	d.Tick()

	if sink.count() != 2 {
		t.Errorf("notify calls = %d, want 2 (one per task in its minute)", sink.count())
	}
}

func TestScanAt_StateErrorReturnsNothing(t *testing.T) {
	state := &memState{err: errors.New("storage offline"), ledger: ledger.New()}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Minute)
	if got := d.ScanAt(clk.Now()); got != nil {
		t.Errorf("ScanAt() = %v, want nil on state error", got)
	}
}

func TestStartStop(t *testing.T) {
	state := &memState{
		tasks:  []models.Task{dailyTask("a", "09:00")},
		ledger: ledger.New(),
	}
	sink := &recordingSink{}
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

	d := New(state, sink, clk, time.Hour)
	d.Start()
	d.Start() // second Start is a no-op

	// Startup scan runs immediately before the first tick.
	deadline := time.Now().Add(2 * time.Second)
	for sink.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.count() != 1 {
		t.Fatalf("notify calls after startup scan = %d, want 1", sink.count())
	}

	d.Stop()
	d.Stop() // second Stop is a no-op

	if got := sink.count(); got != 1 {
		t.Errorf("notify calls after Stop() = %d, want 1", got)
	}
}
