package domain

import "time"

// ScanMode identifies the diagnostic capture mode of a scan.
type ScanMode string

const (
	ModeMuzzle  ScanMode = "muzzle"
	ModeSpatial ScanMode = "spatial"
	ModeAudio   ScanMode = "audio"
	ModeGeneral ScanMode = "general"
)

// ScanResults is the mode-shaped diagnostic payload of a scan. The shape is
// opaque to the gateway except for the overallScore field, which feeds back
// into the cattle's health score.
type ScanResults map[string]any

// OverallScore extracts the numeric overallScore, if present.
func (r ScanResults) OverallScore() (float64, bool) {
	v, ok := r["overallScore"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Scan is one diagnostic event for one animal. Scans are append-only: once
// written they are never mutated or deleted.
type Scan struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	CattleID  string      `json:"cattleId"`
	Mode      ScanMode    `json:"mode"`
	Results   ScanResults `json:"results"`
	Timestamp time.Time   `json:"timestamp"`
}
