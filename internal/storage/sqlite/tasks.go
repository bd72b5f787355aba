package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jordanwhite/dailydo/internal/models"
)

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var t models.Task
	var created string
	var deletedAt sql.NullString

	err := scan(
		&t.ID, &t.Title, &t.Category, &t.ReminderTime, &t.Repeat,
		&t.Notes, &created, &t.Active, &deletedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.Created, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created for task %s: %w", t.ID, err)
	}
	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.String
	}

	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, category, reminder_time, repeat, notes, created, active, deleted_at
		FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, fmt.Errorf("task not found: %s", id)
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	return s.queryTasks(`
		SELECT id, title, category, reminder_time, repeat, notes, created, active, deleted_at
		FROM tasks WHERE deleted_at IS NULL ORDER BY created`)
}

func (s *Store) GetAllTasksIncludingDeleted() ([]models.Task, error) {
	return s.queryTasks(`
		SELECT id, title, category, reminder_time, repeat, notes, created, active, deleted_at
		FROM tasks ORDER BY created`)
}

func (s *Store) queryTasks(query string) ([]models.Task, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	var deletedAt sql.NullString
	if task.DeletedAt != nil {
		deletedAt = sql.NullString{String: *task.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, category, reminder_time, repeat, notes, created, active, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			reminder_time = excluded.reminder_time,
			repeat = excluded.repeat,
			notes = excluded.notes,
			active = excluded.active,
			deleted_at = excluded.deleted_at`,
		task.ID, task.Title, task.Category, task.ReminderTime, task.Repeat,
		task.Notes, task.Created.UTC().Format(time.RFC3339), task.Active, deletedAt)
	return err
}

func (s *Store) DeleteTask(id string) error {
	// Soft delete: set deleted_at instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("task with id %s not found", id)
		}
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("task with id %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE tasks SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *Store) RestoreTask(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("task with id %s not found", id)
		}
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a task that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE tasks SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func (s *Store) ReplaceTasks(tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, title, category, reminder_time, repeat, notes, created, active, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, task := range tasks {
		var deletedAt sql.NullString
		if task.DeletedAt != nil {
			deletedAt = sql.NullString{String: *task.DeletedAt, Valid: true}
		}
		_, err := stmt.Exec(
			task.ID, task.Title, task.Category, task.ReminderTime, task.Repeat,
			task.Notes, task.Created.UTC().Format(time.RFC3339), task.Active, deletedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
