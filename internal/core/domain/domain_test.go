package domain

import "testing"

func TestUserIDFromPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"+919876543210", "user_919876543210"},
		{"+91 98765-43210", "user_919876543210"},
		{"(91) 98765 43210", "user_919876543210"},
		{"", "user_"},
	}
	for _, tc := range cases {
		if got := UserIDFromPhone(tc.phone); got != tc.want {
			t.Errorf("UserIDFromPhone(%q) = %q, want %q", tc.phone, got, tc.want)
		}
	}
}

func TestKeysScopedByUser(t *testing.T) {
	if got := CattleKey("user_1", "c1"); got != "cattle:user_1:c1" {
		t.Errorf("CattleKey = %q", got)
	}
	if got := ScanPrefix("user_1"); got != "scan:user_1:" {
		t.Errorf("ScanPrefix = %q", got)
	}
	if got := AlertKey("user_1", "a1"); got != "alert:user_1:a1" {
		t.Errorf("AlertKey = %q", got)
	}
	if got := UserKey("user_1"); got != "user:user_1" {
		t.Errorf("UserKey = %q", got)
	}
}

func TestOverallScore(t *testing.T) {
	cases := []struct {
		name    string
		results ScanResults
		want    float64
		ok      bool
	}{
		{"float", ScanResults{"overallScore": 82.5}, 82.5, true},
		{"int", ScanResults{"overallScore": 82}, 82, true},
		{"absent", ScanResults{"generalHealth": "Good"}, 0, false},
		{"wrong type", ScanResults{"overallScore": "high"}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.results.OverallScore()
			if ok != tc.ok || got != tc.want {
				t.Errorf("OverallScore() = (%v, %v), want (%v, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}
