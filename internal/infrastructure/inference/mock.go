// Package inference hosts the scan-result generation backends. The only
// implementation today is a mock that fabricates plausible, mode-shaped
// readings; a real model server would slot in behind the same interface.
package inference

import (
	"math/rand"
	"time"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// MockAnalyzer fabricates diagnostic results when a scan arrives without any.
// Scores land in [75,95).
type MockAnalyzer struct{}

func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

func (a *MockAnalyzer) Generate(mode domain.ScanMode) domain.ScanResults {
	baseScore := float64(75 + rand.Intn(20))

	results := domain.ScanResults{
		"overallScore": baseScore,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	}

	switch mode {
	case domain.ModeMuzzle:
		results["muzzleMatch"] = 99.7
		results["identificationConfidence"] = "High"
	case domain.ModeSpatial:
		results["gaitAnalysis"] = map[string]any{
			"symmetry":         92,
			"speed":            "Normal",
			"lamenessDetected": false,
		}
	case domain.ModeAudio:
		results["vocalizationAnalysis"] = map[string]any{
			"frequency":        "Normal",
			"distressLevel":    "Low",
			"healthIndicators": []string{"Normal breathing", "No coughing"},
		}
	default:
		results["generalHealth"] = "Good"
	}

	return results
}
