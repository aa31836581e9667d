package models

// ConflictStatus tags an event relative to a new arrival time.
type ConflictStatus string

const (
	ConflictAtRisk  ConflictStatus = "at_risk"
	ConflictOnTrack ConflictStatus = "on_track"
)

// ClassifiedEvent is a calendar event plus its conflict classification.
// At-risk events carry a human-readable reason.
type ClassifiedEvent struct {
	CalendarEvent
	ConflictStatus ConflictStatus `json:"conflictStatus"`
	Reason         string         `json:"reason,omitempty"`
}

// ConflictReport partitions a day's events against a new arrival time.
// It is derived and ephemeral; both partitions preserve the relative
// order of the input events.
type ConflictReport struct {
	ArrivalTime   string            `json:"arrivalTime"`
	AvailableFrom string            `json:"availableFrom"`
	AtRisk        []ClassifiedEvent `json:"atRisk"`
	OnTrack       []ClassifiedEvent `json:"onTrack"`
	Summary       string            `json:"summary"`
}
