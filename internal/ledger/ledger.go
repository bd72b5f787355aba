package ledger

// Ledger records which task ids were completed on which calendar day.
// Days are keyed by YYYY-MM-DD date strings. A day with no recorded
// completions behaves as an empty set; entries are only materialized by the
// first toggle for that day.
type Ledger struct {
	days map[string]map[string]bool
}

func New() *Ledger {
	return &Ledger{days: make(map[string]map[string]bool)}
}

// Toggle flips the completion state of a task for a day and returns the
// resulting membership (true = now complete). Toggling twice restores the
// original state. Empty day sets are pruned so serialization stays minimal.
func (l *Ledger) Toggle(day, taskID string) bool {
	set, ok := l.days[day]
	if !ok {
		set = make(map[string]bool)
		l.days[day] = set
	}

	if set[taskID] {
		delete(set, taskID)
		if len(set) == 0 {
			delete(l.days, day)
		}
		return false
	}

	set[taskID] = true
	return true
}

// IsComplete reports whether the task was marked complete on the day.
func (l *Ledger) IsComplete(day, taskID string) bool {
	return l.days[day][taskID]
}

// CountFor returns the number of completions recorded for the day.
func (l *Ledger) CountFor(day string) int {
	return len(l.days[day])
}

// IDsFor returns the task ids completed on the day. The result is a copy;
// mutating it does not affect the ledger.
func (l *Ledger) IDsFor(day string) []string {
	set := l.days[day]
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// Days returns every date key with at least one recorded completion.
func (l *Ledger) Days() []string {
	days := make([]string, 0, len(l.days))
	for day := range l.days {
		days = append(days, day)
	}
	return days
}

// Snapshot returns the ledger contents as a plain map for serialization.
func (l *Ledger) Snapshot() map[string][]string {
	out := make(map[string][]string, len(l.days))
	for day := range l.days {
		out[day] = l.IDsFor(day)
	}
	return out
}

// FromSnapshot rebuilds a ledger from a serialized snapshot. Duplicate ids
// within a day collapse to a single membership.
func FromSnapshot(snapshot map[string][]string) *Ledger {
	l := New()
	for day, ids := range snapshot {
		if len(ids) == 0 {
			continue
		}
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		l.days[day] = set
	}
	return l
}
