package backup

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "dailydo.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return store
}

func sampleTask(id string) models.Task {
	return models.Task{
		ID:           id,
		Title:        "Morning run",
		Category:     models.CategoryExercise,
		ReminderTime: "06:30",
		Repeat:       models.RepeatWeekdays,
		Created:      time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC),
		Active:       true,
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	if err := src.AddTask(sampleTask("t1")); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if err := src.SetCompletion("2026-08-10", "t1", true); err != nil {
		t.Fatalf("SetCompletion() error: %v", err)
	}
	if err := src.SaveStreak(models.StreakState{Count: 4, LastQualifyingDate: "2026-08-10"}); err != nil {
		t.Fatalf("SaveStreak() error: %v", err)
	}

	data, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	dst := newTestStore(t)
	if err := Import(dst, data); err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	if _, err := dst.GetTask("t1"); err != nil {
		t.Errorf("imported task missing: %v", err)
	}
	ids, err := dst.GetCompletionsForDay("2026-08-10")
	if err != nil || len(ids) != 1 || ids[0] != "t1" {
		t.Errorf("imported completions = %v (err %v), want [t1]", ids, err)
	}
	streak, err := dst.GetStreak()
	if err != nil || streak.Count != 4 {
		t.Errorf("imported streak = %+v (err %v), want count 4", streak, err)
	}
}

func TestImportMissingTasksLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddTask(sampleTask("keep")); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	err := Import(store, []byte(`{"completions": {"2026-08-10": ["x"]}}`))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Import() error = %v, want ErrMalformedRecord", err)
	}

	if _, err := store.GetTask("keep"); err != nil {
		t.Errorf("existing task lost after rejected import: %v", err)
	}
	ids, err := store.GetCompletionsForDay("2026-08-10")
	if err != nil {
		t.Fatalf("GetCompletionsForDay() error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("completions written by rejected import: %v", ids)
	}
}

func TestImportMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"tasks not an array", `{"tasks": "nope"}`},
		{"task missing required fields", `{"tasks": [{"id": "x"}]}`},
		{"task with bad reminder time", `{"tasks": [{"id": "x", "title": "t", "category": "other", "reminder_time": "25:99", "repeat": "daily", "created": "2026-08-01T00:00:00Z", "active": true}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			err := Import(store, []byte(tt.data))
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("Import() error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestImportMissingOptionalSections(t *testing.T) {
	store := newTestStore(t)

	payload := map[string]any{
		"tasks": []models.Task{sampleTask("t1")},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	if err := Import(store, data); err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	all, err := store.GetAllCompletions()
	if err != nil {
		t.Fatalf("GetAllCompletions() error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("completions = %v, want empty", all)
	}
	streak, err := store.GetStreak()
	if err != nil || streak.Count != 0 {
		t.Errorf("streak = %+v (err %v), want zero value", streak, err)
	}
}

func TestExportShapeIsStable(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddTask(sampleTask("t1")); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	data, err := ExportJSON(store)
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("export did not produce valid JSON: %v", err)
	}
	for _, key := range []string{"version", "exported_at", "tasks", "completions", "streak"} {
		if _, ok := record[key]; !ok {
			t.Errorf("export missing %q key", key)
		}
	}
}
