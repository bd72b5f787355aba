package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/models"
)

type Store struct {
	Version     int                    `json:"version"`
	Settings    models.Settings        `json:"settings"`
	Tasks       map[string]models.Task `json:"tasks"`
	Completions map[string][]string    `json:"completions"` // day -> task ids
	Streak      models.StreakState     `json:"streak"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Settings: models.Settings{
			Timezone:             constants.DefaultTimezone,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
			TickIntervalSec:      constants.DefaultTickIntervalSec,
		},
		Tasks:       make(map[string]models.Task),
		Completions: make(map[string][]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dailydo init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Tasks == nil {
		s.store.Tasks = make(map[string]models.Task)
	}
	if s.store.Completions == nil {
		s.store.Completions = make(map[string][]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if s.store == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}

	task, ok := s.store.Tasks[id]
	if !ok || task.DeletedAt != nil {
		return models.Task{}, fmt.Errorf("task not found: %s", id)
	}

	return task, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	tasks := make([]models.Task, 0, len(s.store.Tasks))
	for _, task := range s.store.Tasks {
		if task.DeletedAt == nil {
			tasks = append(tasks, task)
		}
	}

	return tasks, nil
}

func (s *JSONStore) GetAllTasksIncludingDeleted() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	tasks := make([]models.Task, 0, len(s.store.Tasks))
	for _, task := range s.store.Tasks {
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Tasks[task.ID]; !ok {
		return fmt.Errorf("task not found: %s", task.ID)
	}

	s.store.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	task, ok := s.store.Tasks[id]
	if !ok {
		return fmt.Errorf("task not found: %s", id)
	}
	if task.DeletedAt != nil {
		return fmt.Errorf("task with id %s is already deleted", id)
	}

	// Soft delete: set deleted_at timestamp
	now := time.Now().UTC().Format(time.RFC3339)
	task.DeletedAt = &now
	s.store.Tasks[id] = task
	return s.save()
}

func (s *JSONStore) RestoreTask(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	task, ok := s.store.Tasks[id]
	if !ok {
		return fmt.Errorf("task not found: %s", id)
	}

	// Only allow restoring tasks that are currently soft-deleted
	if task.DeletedAt == nil {
		return fmt.Errorf("cannot restore a task that is not deleted: %s", id)
	}

	task.DeletedAt = nil
	s.store.Tasks[id] = task
	return s.save()
}

func (s *JSONStore) ReplaceTasks(tasks []models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	replacement := make(map[string]models.Task, len(tasks))
	for _, task := range tasks {
		replacement[task.ID] = task
	}
	s.store.Tasks = replacement
	return s.save()
}

func (s *JSONStore) SetCompletion(day, taskID string, done bool) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	ids := s.store.Completions[day]
	idx := -1
	for i, id := range ids {
		if id == taskID {
			idx = i
			break
		}
	}

	if done {
		if idx < 0 {
			s.store.Completions[day] = append(ids, taskID)
		}
	} else {
		if idx >= 0 {
			ids = append(ids[:idx], ids[idx+1:]...)
			if len(ids) == 0 {
				delete(s.store.Completions, day)
			} else {
				s.store.Completions[day] = ids
			}
		}
	}

	return s.save()
}

func (s *JSONStore) GetCompletionsForDay(day string) ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	ids := make([]string, len(s.store.Completions[day]))
	copy(ids, s.store.Completions[day])
	sort.Strings(ids)
	return ids, nil
}

func (s *JSONStore) GetAllCompletions() (map[string][]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	all := make(map[string][]string, len(s.store.Completions))
	for day, ids := range s.store.Completions {
		cp := make([]string, len(ids))
		copy(cp, ids)
		all[day] = cp
	}
	return all, nil
}

func (s *JSONStore) ReplaceCompletions(completions map[string][]string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	replacement := make(map[string][]string, len(completions))
	for day, ids := range completions {
		cp := make([]string, len(ids))
		copy(cp, ids)
		replacement[day] = cp
	}
	s.store.Completions = replacement
	return s.save()
}

func (s *JSONStore) GetStreak() (models.StreakState, error) {
	if s.store == nil {
		return models.StreakState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Streak, nil
}

func (s *JSONStore) SaveStreak(state models.StreakState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Streak = state
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
