package services

import (
	"time"

	"arguecoach/models"
)

// AppendAttempt returns a new history slice with a record for the given score
// added at the end. The input slice is never mutated; prior records keep their
// order. Every attempt is retained for the session's lifetime.
func AppendAttempt(history []models.AttemptRecord, score int, at time.Time) []models.AttemptRecord {
	next := make([]models.AttemptRecord, len(history), len(history)+1)
	copy(next, history)
	return append(next, models.AttemptRecord{
		Score:     score,
		Timestamp: at.Format(time.Kitchen),
	})
}

// ClearAttempts returns an empty history.
func ClearAttempts() []models.AttemptRecord {
	return []models.AttemptRecord{}
}
