package sqlite

import (
	"database/sql"

	"github.com/jordanwhite/dailydo/internal/models"
)

func (s *Store) GetStreak() (models.StreakState, error) {
	row := s.db.QueryRow("SELECT count, last_qualifying_date FROM streak_state WHERE id = 1")

	var state models.StreakState
	err := row.Scan(&state.Count, &state.LastQualifyingDate)
	if err != nil {
		if err == sql.ErrNoRows {
			// Fresh database, no streak yet.
			return models.StreakState{}, nil
		}
		return models.StreakState{}, err
	}

	return state, nil
}

func (s *Store) SaveStreak(state models.StreakState) error {
	_, err := s.db.Exec(`
		INSERT INTO streak_state (id, count, last_qualifying_date) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			count = excluded.count,
			last_qualifying_date = excluded.last_qualifying_date`,
		state.Count, state.LastQualifyingDate)
	return err
}
