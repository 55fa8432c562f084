package models

import (
	"strings"
	"testing"
)

func TestParseScoreResultValidPayload(t *testing.T) {
	payload := `{
		"coherence": 0.8,
		"relevance": 0.85,
		"evidenceStrength": 0.7,
		"fallacyPenalty": 0.05,
		"argumentStrength": 0.755,
		"details": {
			"sentenceCount": 12,
			"evidenceCount": 3,
			"fallaciesDetected": ["Straw Man"]
		}
	}`

	result, err := ParseScoreResult([]byte(payload))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.ArgumentStrength != 0.755 {
		t.Errorf("Expected argumentStrength 0.755, got %v", result.ArgumentStrength)
	}
	if result.Percent() != 76 {
		t.Errorf("Expected percent 76, got %d", result.Percent())
	}
	if len(result.Details.FallaciesDetected) != 1 {
		t.Errorf("Expected one detected fallacy, got %+v", result.Details.FallaciesDetected)
	}
}

func TestParseScoreResultMissingArgumentStrength(t *testing.T) {
	payload := `{"coherence": 0.8, "relevance": 0.9}`

	if _, err := ParseScoreResult([]byte(payload)); err == nil {
		t.Error("Expected an error for missing argumentStrength")
	} else if !strings.Contains(err.Error(), "argumentStrength") {
		t.Errorf("Error should name the missing field, got %v", err)
	}
}

func TestParseScoreResultRejectsOutOfRangeMetrics(t *testing.T) {
	payloads := []string{
		`{"argumentStrength": 1.5}`,
		`{"argumentStrength": -0.1}`,
		`{"coherence": 2.0, "argumentStrength": 0.5}`,
		`{"fallacyPenalty": -0.2, "argumentStrength": 0.5}`,
	}
	for _, payload := range payloads {
		if _, err := ParseScoreResult([]byte(payload)); err == nil {
			t.Errorf("Expected out-of-range error for %s", payload)
		}
	}
}

func TestParseScoreResultRejectsNegativeCounts(t *testing.T) {
	payload := `{"argumentStrength": 0.5, "details": {"sentenceCount": -1}}`

	if _, err := ParseScoreResult([]byte(payload)); err == nil {
		t.Error("Expected an error for negative sentenceCount")
	}
}

func TestParseScoreResultMalformedJSON(t *testing.T) {
	if _, err := ParseScoreResult([]byte(`not json`)); err == nil {
		t.Error("Expected an error for malformed payload")
	}
}

func TestParseScoreResultMissingDiagnosticsDefaultToZero(t *testing.T) {
	result, err := ParseScoreResult([]byte(`{"argumentStrength": 0.5}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Coherence != 0 || result.FallacyPenalty != 0 {
		t.Errorf("Missing diagnostics should default to zero, got %+v", result)
	}
}

func TestPercentRounds(t *testing.T) {
	cases := []struct {
		strength float64
		want     int
	}{
		{0.0, 0},
		{0.554, 55},
		{0.555, 56},
		{0.76, 76},
		{1.0, 100},
	}
	for _, tc := range cases {
		got := ScoreResult{ArgumentStrength: tc.strength}.Percent()
		if got != tc.want {
			t.Errorf("Percent(%v) = %d, want %d", tc.strength, got, tc.want)
		}
	}
}
