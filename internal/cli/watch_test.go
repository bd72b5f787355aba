package cli

import (
	"testing"

	"github.com/jordanwhite/dailydo/internal/models"
)

func TestStoreState_IsComplete(t *testing.T) {
	ctx, _ := setupTestContext(t)
	task := addTestTask(t, ctx, "Read", "07:30", models.RepeatDaily)

	state := storeState{ctx.Store}
	if state.IsComplete("2026-08-12", task.ID) {
		t.Error("expected incomplete before toggle")
	}

	if err := ctx.Store.SetCompletion("2026-08-12", task.ID, true); err != nil {
		t.Fatalf("failed to set completion: %v", err)
	}
	if !state.IsComplete("2026-08-12", task.ID) {
		t.Error("expected complete after toggle")
	}
	if state.IsComplete("2026-08-13", task.ID) {
		t.Error("completion must not leak across days")
	}
}

func TestStoreState_ActiveTasksExcludesDeleted(t *testing.T) {
	ctx, _ := setupTestContext(t)
	task := addTestTask(t, ctx, "Read", "07:30", models.RepeatDaily)
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	state := storeState{ctx.Store}
	tasks, err := state.ActiveTasks()
	if err != nil {
		t.Fatalf("ActiveTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks after delete, got %d", len(tasks))
	}
}
