package events

import "time"

// Event codes emitted by the search pipeline.
const (
	TypeTurnCompleted  = "SEARCH_TURN_COMPLETED"
	TypeSessionCleared = "SEARCH_SESSION_CLEARED"
)

// NewTurnCompletedEvent records one finished search turn for downstream
// consumers (activity history, analytics).
func NewTurnCompletedEvent(sessionID, userID, query string, results int, reset bool) Event {
	return BaseEvent{
		Type: TypeTurnCompleted,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
			"query":      query,
			"results":    results,
			"reset":      reset,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// NewSessionClearedEvent records an explicit session reset.
func NewSessionClearedEvent(sessionID, userID string) Event {
	return BaseEvent{
		Type: TypeSessionCleared,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
		},
		OccurredAt: time.Now().UTC(),
	}
}
