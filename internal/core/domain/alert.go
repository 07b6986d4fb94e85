package domain

import "time"

// Alert severities, ordered by urgency.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Alert is a health notification for one animal. Alerts are only ever mutated
// to flip the read flag; deletion is a client-side concern.
type Alert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CattleID  string    `json:"cattleId,omitempty"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
