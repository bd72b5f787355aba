package postgres

func (s *Store) SetCompletion(day, taskID string, done bool) error {
	if done {
		_, err := s.db.Exec(`
			INSERT INTO completions (day, task_id) VALUES ($1, $2)
			ON CONFLICT (day, task_id) DO NOTHING`, day, taskID)
		return err
	}

	_, err := s.db.Exec("DELETE FROM completions WHERE day = $1 AND task_id = $2", day, taskID)
	return err
}

func (s *Store) GetCompletionsForDay(day string) ([]string, error) {
	rows, err := s.db.Query("SELECT task_id FROM completions WHERE day = $1 ORDER BY task_id", day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) GetAllCompletions() (map[string][]string, error) {
	rows, err := s.db.Query("SELECT day, task_id FROM completions ORDER BY day, task_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make(map[string][]string)
	for rows.Next() {
		var day, id string
		if err := rows.Scan(&day, &id); err != nil {
			return nil, err
		}
		all[day] = append(all[day], id)
	}

	return all, rows.Err()
}

func (s *Store) ReplaceCompletions(completions map[string][]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO completions (day, task_id) VALUES ($1, $2)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for day, ids := range completions {
		for _, id := range ids {
			if _, err := stmt.Exec(day, id); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
