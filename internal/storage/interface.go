package storage

import "github.com/jordanwhite/dailydo/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	GetAllTasksIncludingDeleted() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	RestoreTask(id string) error
	// ReplaceTasks atomically swaps the full task set. Used by import.
	ReplaceTasks([]models.Task) error

	// Completions. A completion is a (day, task id) pair; marking an
	// already-complete pair off removes it.
	SetCompletion(day, taskID string, done bool) error
	GetCompletionsForDay(day string) ([]string, error)
	GetAllCompletions() (map[string][]string, error)
	// ReplaceCompletions atomically swaps the full completion history.
	ReplaceCompletions(map[string][]string) error

	// Streak
	GetStreak() (models.StreakState, error)
	SaveStreak(models.StreakState) error

	// Utils
	GetConfigPath() string
}
