package streak

import (
	"github.com/jordanwhite/dailydo/internal/ledger"
	"github.com/jordanwhite/dailydo/internal/models"
	"github.com/jordanwhite/dailydo/internal/utils"
)

// maxLookback bounds the walk over zero-due gap days between the last
// qualifying date and today.
const maxLookback = 366

// Advance evaluates the streak for today and returns the updated state.
// A day qualifies when at least one task is due and every due task is
// complete. Days with no due tasks neither extend nor break the streak:
// they are skipped when checking continuity, so a streak survives a rest
// day but resets when a day with due tasks is left incomplete.
//
// Advance is idempotent within a day: once today has been counted,
// re-evaluation after further toggles leaves the state unchanged, so it is
// safe to call after every completion toggle.
func Advance(today string, tasks []models.Task, l *ledger.Ledger, state models.StreakState) models.StreakState {
	dueToday := models.DueOn(tasks, today)
	if len(dueToday) == 0 {
		return state
	}
	if state.LastQualifyingDate == today {
		return state
	}

	for _, t := range dueToday {
		if !l.IsComplete(today, t.ID) {
			return state
		}
	}

	if state.Count > 0 && contiguous(state.LastQualifyingDate, today, tasks) {
		state.Count++
	} else {
		state.Count = 1
	}
	state.LastQualifyingDate = today
	return state
}

// contiguous reports whether every day strictly between last and today had
// zero due tasks, i.e. the streak carries over the gap.
func contiguous(last, today string, tasks []models.Task) bool {
	if last == "" {
		return false
	}
	day := utils.PrevDay(today)
	for i := 0; i < maxLookback; i++ {
		if day == last {
			return true
		}
		if day == "" || day < last {
			return false
		}
		if len(models.DueOn(tasks, day)) > 0 {
			// A due day between the two qualifying days that never
			// qualified itself breaks the chain.
			return false
		}
		day = utils.PrevDay(day)
	}
	return false
}
