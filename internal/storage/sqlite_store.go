package storage

import (
	"database/sql"

	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

// Lifecycle
func (s *SQLiteStore) Init() error  { return s.store.Init() }
func (s *SQLiteStore) Load() error  { return s.store.Load() }
func (s *SQLiteStore) Close() error { return s.store.Close() }

// Settings
func (s *SQLiteStore) GetSettings() (models.Settings, error)     { return s.store.GetSettings() }
func (s *SQLiteStore) SaveSettings(settings models.Settings) error { return s.store.SaveSettings(settings) }

// Tasks
func (s *SQLiteStore) AddTask(task models.Task) error                      { return s.store.AddTask(task) }
func (s *SQLiteStore) GetTask(id string) (models.Task, error)              { return s.store.GetTask(id) }
func (s *SQLiteStore) GetAllTasks() ([]models.Task, error)                 { return s.store.GetAllTasks() }
func (s *SQLiteStore) GetAllTasksIncludingDeleted() ([]models.Task, error) { return s.store.GetAllTasksIncludingDeleted() }
func (s *SQLiteStore) UpdateTask(task models.Task) error                   { return s.store.UpdateTask(task) }
func (s *SQLiteStore) DeleteTask(id string) error                          { return s.store.DeleteTask(id) }
func (s *SQLiteStore) RestoreTask(id string) error                         { return s.store.RestoreTask(id) }
func (s *SQLiteStore) ReplaceTasks(tasks []models.Task) error              { return s.store.ReplaceTasks(tasks) }

// Completions
func (s *SQLiteStore) SetCompletion(day, taskID string, done bool) error { return s.store.SetCompletion(day, taskID, done) }
func (s *SQLiteStore) GetCompletionsForDay(day string) ([]string, error) { return s.store.GetCompletionsForDay(day) }
func (s *SQLiteStore) GetAllCompletions() (map[string][]string, error)   { return s.store.GetAllCompletions() }
func (s *SQLiteStore) ReplaceCompletions(c map[string][]string) error    { return s.store.ReplaceCompletions(c) }

// Streak
func (s *SQLiteStore) GetStreak() (models.StreakState, error)    { return s.store.GetStreak() }
func (s *SQLiteStore) SaveStreak(state models.StreakState) error { return s.store.SaveStreak(state) }

// Utils
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB        { return s.store.GetDB() }
