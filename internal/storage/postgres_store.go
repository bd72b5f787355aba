package storage

import (
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface.
type PostgresStore struct {
	store *postgres.Store
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		store: postgres.New(connStr),
	}
}

// Lifecycle
func (s *PostgresStore) Init() error  { return s.store.Init() }
func (s *PostgresStore) Load() error  { return s.store.Load() }
func (s *PostgresStore) Close() error { return s.store.Close() }

// Settings
func (s *PostgresStore) GetSettings() (models.Settings, error)       { return s.store.GetSettings() }
func (s *PostgresStore) SaveSettings(settings models.Settings) error { return s.store.SaveSettings(settings) }

// Tasks
func (s *PostgresStore) AddTask(task models.Task) error                      { return s.store.AddTask(task) }
func (s *PostgresStore) GetTask(id string) (models.Task, error)              { return s.store.GetTask(id) }
func (s *PostgresStore) GetAllTasks() ([]models.Task, error)                 { return s.store.GetAllTasks() }
func (s *PostgresStore) GetAllTasksIncludingDeleted() ([]models.Task, error) { return s.store.GetAllTasksIncludingDeleted() }
func (s *PostgresStore) UpdateTask(task models.Task) error                   { return s.store.UpdateTask(task) }
func (s *PostgresStore) DeleteTask(id string) error                          { return s.store.DeleteTask(id) }
func (s *PostgresStore) RestoreTask(id string) error                         { return s.store.RestoreTask(id) }
func (s *PostgresStore) ReplaceTasks(tasks []models.Task) error              { return s.store.ReplaceTasks(tasks) }

// Completions
func (s *PostgresStore) SetCompletion(day, taskID string, done bool) error { return s.store.SetCompletion(day, taskID, done) }
func (s *PostgresStore) GetCompletionsForDay(day string) ([]string, error) { return s.store.GetCompletionsForDay(day) }
func (s *PostgresStore) GetAllCompletions() (map[string][]string, error)   { return s.store.GetAllCompletions() }
func (s *PostgresStore) ReplaceCompletions(c map[string][]string) error    { return s.store.ReplaceCompletions(c) }

// Streak
func (s *PostgresStore) GetStreak() (models.StreakState, error)    { return s.store.GetStreak() }
func (s *PostgresStore) SaveStreak(state models.StreakState) error { return s.store.SaveStreak(state) }

// Utils
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }
