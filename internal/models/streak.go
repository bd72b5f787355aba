package models

// StreakState records the user's consecutive-completion streak.
// LastQualifyingDate is the date key (YYYY-MM-DD) of the most recent day on
// which every due task was completed; empty when no day has qualified yet.
type StreakState struct {
	Count              int    `json:"count"`
	LastQualifyingDate string `json:"last_qualifying_date,omitempty"`
}
