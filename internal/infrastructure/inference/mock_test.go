package inference

import (
	"testing"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

func TestGenerateScoreRange(t *testing.T) {
	a := NewMockAnalyzer()
	for i := 0; i < 200; i++ {
		results := a.Generate(domain.ModeGeneral)
		score, ok := results.OverallScore()
		if !ok {
			t.Fatal("overallScore missing")
		}
		if score < 75 || score >= 95 {
			t.Fatalf("score %v out of [75,95)", score)
		}
	}
}

func TestGenerateModeShapes(t *testing.T) {
	a := NewMockAnalyzer()

	cases := []struct {
		mode domain.ScanMode
		key  string
	}{
		{domain.ModeMuzzle, "muzzleMatch"},
		{domain.ModeSpatial, "gaitAnalysis"},
		{domain.ModeAudio, "vocalizationAnalysis"},
		{domain.ModeGeneral, "generalHealth"},
		{domain.ScanMode("unknown"), "generalHealth"},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			results := a.Generate(tc.mode)
			if _, ok := results[tc.key]; !ok {
				t.Errorf("mode %s missing %q: %v", tc.mode, tc.key, results)
			}
			if _, ok := results["timestamp"]; !ok {
				t.Error("timestamp missing")
			}
		})
	}
}

func TestGenerateMuzzleConfidence(t *testing.T) {
	results := NewMockAnalyzer().Generate(domain.ModeMuzzle)
	if results["identificationConfidence"] != "High" {
		t.Errorf("identificationConfidence = %v", results["identificationConfidence"])
	}
}
