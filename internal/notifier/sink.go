package notifier

import (
	"fmt"
	"strings"

	"github.com/jordanwhite/dailydo/internal/models"
)

// Sink delivers a reminder for a task. Implementations own their delivery
// mechanics, including any timeout or retry policy; callers treat failures
// as non-fatal.
type Sink interface {
	Notify(task models.Task) error
}

// Multi fans a reminder out to several sinks. Every sink is attempted even
// when earlier ones fail; the errors are joined so the caller can log them
// together.
type Multi struct {
	sinks []Sink
}

func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Notify(task models.Task) error {
	var errs []string
	for _, s := range m.sinks {
		if err := s.Notify(task); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("notification delivery failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Message renders the standard reminder text for a task.
func Message(task models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reminder: %s (%s, %s)", task.Title, task.Category, task.ReminderTime)
	if task.Notes != "" {
		fmt.Fprintf(&b, " - %s", task.Notes)
	}
	return b.String()
}
