package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/storage"
)

// ErrMalformedRecord is returned when an import payload cannot be
// interpreted as an export record. The store is left untouched.
var ErrMalformedRecord = errors.New("malformed export record")

// Record is the portable JSON snapshot of the full application state.
type Record struct {
	Version     int                 `json:"version"`
	ExportedAt  string              `json:"exported_at"`
	Tasks       []models.Task       `json:"tasks"`
	Completions map[string][]string `json:"completions"`
	Streak      models.StreakState  `json:"streak"`
}

// Export gathers all state from the store into a Record.
func Export(store storage.Provider) (Record, error) {
	tasks, err := store.GetAllTasksIncludingDeleted()
	if err != nil {
		return Record{}, fmt.Errorf("failed to read tasks: %w", err)
	}

	completions, err := store.GetAllCompletions()
	if err != nil {
		return Record{}, fmt.Errorf("failed to read completions: %w", err)
	}

	streak, err := store.GetStreak()
	if err != nil {
		return Record{}, fmt.Errorf("failed to read streak: %w", err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	if completions == nil {
		completions = map[string][]string{}
	}

	return Record{
		Version:     constants.ExportVersion,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Tasks:       tasks,
		Completions: completions,
		Streak:      streak,
	}, nil
}

// ExportJSON serializes the full application state for transport.
func ExportJSON(store storage.Provider) ([]byte, error) {
	record, err := Export(store)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(record, "", "  ")
}

// Import replaces the store's state with the given export payload.
// The payload must at minimum carry a parseable tasks collection;
// anything else fails with ErrMalformedRecord before any write, so a
// bad import never clobbers existing state. Missing completions or
// streak sections import as empty.
func Import(store storage.Provider, data []byte) error {
	// Probe for the tasks key first: a record without one is not an
	// export at all, even if it happens to be valid JSON.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	rawTasks, ok := probe["tasks"]
	if !ok {
		return fmt.Errorf("%w: missing tasks collection", ErrMalformedRecord)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	var tasks []models.Task
	if err := json.Unmarshal(rawTasks, &tasks); err != nil {
		return fmt.Errorf("%w: unparseable tasks collection: %v", ErrMalformedRecord, err)
	}

	for i := range tasks {
		if err := tasks[i].Validate(); err != nil {
			return fmt.Errorf("%w: task %d: %v", ErrMalformedRecord, i, err)
		}
	}

	if record.Completions == nil {
		record.Completions = map[string][]string{}
	}

	if err := store.ReplaceTasks(tasks); err != nil {
		return fmt.Errorf("failed to import tasks: %w", err)
	}
	if err := store.ReplaceCompletions(record.Completions); err != nil {
		return fmt.Errorf("failed to import completions: %w", err)
	}
	if err := store.SaveStreak(record.Streak); err != nil {
		return fmt.Errorf("failed to import streak: %w", err)
	}

	return nil
}
