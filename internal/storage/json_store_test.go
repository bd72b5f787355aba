package storage

import (
	"path/filepath"
	"testing"

	"github.com/jordanwhite/dailydo/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "dailydo.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return store
}

func TestJSONInitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailydo.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init() succeeded, want error")
	}
}

func TestJSONPersistsAcrossLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailydo.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	if err := store.AddTask(testTask("t1")); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if err := store.SetCompletion("2026-08-10", "t1", true); err != nil {
		t.Fatalf("SetCompletion() error: %v", err)
	}
	if err := store.SaveStreak(models.StreakState{Count: 3, LastQualifyingDate: "2026-08-10"}); err != nil {
		t.Fatalf("SaveStreak() error: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if _, err := reopened.GetTask("t1"); err != nil {
		t.Errorf("task missing after reload: %v", err)
	}
	ids, err := reopened.GetCompletionsForDay("2026-08-10")
	if err != nil || len(ids) != 1 {
		t.Errorf("completions after reload = %v (err %v), want [t1]", ids, err)
	}
	streak, err := reopened.GetStreak()
	if err != nil || streak.Count != 3 {
		t.Errorf("streak after reload = %+v (err %v), want count 3", streak, err)
	}
}

func TestJSONSoftDeleteAndRestore(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.AddTask(testTask("t1")); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if err := store.DeleteTask("t1"); err != nil {
		t.Fatalf("DeleteTask() error: %v", err)
	}
	if _, err := store.GetTask("t1"); err == nil {
		t.Error("GetTask() returned a soft-deleted task")
	}
	if err := store.RestoreTask("t1"); err != nil {
		t.Fatalf("RestoreTask() error: %v", err)
	}
	if _, err := store.GetTask("t1"); err != nil {
		t.Errorf("GetTask() after restore error: %v", err)
	}
}

func TestJSONCompletionToggle(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.SetCompletion("2026-08-10", "t1", true); err != nil {
		t.Fatalf("SetCompletion() error: %v", err)
	}
	if err := store.SetCompletion("2026-08-10", "t1", false); err != nil {
		t.Fatalf("SetCompletion(off) error: %v", err)
	}

	all, err := store.GetAllCompletions()
	if err != nil {
		t.Fatalf("GetAllCompletions() error: %v", err)
	}
	// The empty day set is pruned entirely.
	if _, ok := all["2026-08-10"]; ok {
		t.Errorf("empty day survived untoggle: %v", all)
	}
}

func TestJSONNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "dailydo.json"))
	if _, err := store.GetAllTasks(); err == nil {
		t.Error("GetAllTasks() before Init/Load succeeded, want error")
	}
	if err := store.Load(); err == nil {
		t.Error("Load() on missing file succeeded, want error")
	}
}
