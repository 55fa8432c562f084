package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ScoreDetails carries the diagnostic breakdown attached to a scoring result.
type ScoreDetails struct {
	SentenceCount     int      `json:"sentenceCount"`
	EvidenceCount     int      `json:"evidenceCount"`
	FallaciesDetected []string `json:"fallaciesDetected"`
}

// ScoreResult is the quality evaluation returned by the scoring engine.
// ArgumentStrength is the authoritative composite used for target comparison;
// the remaining metrics are diagnostic.
type ScoreResult struct {
	Coherence        float64      `json:"coherence"`
	Relevance        float64      `json:"relevance"`
	EvidenceStrength float64      `json:"evidenceStrength"`
	FallacyPenalty   float64      `json:"fallacyPenalty"`
	ArgumentStrength float64      `json:"argumentStrength"`
	Details          ScoreDetails `json:"details"`
}

// Percent converts ArgumentStrength into the 0-100 integer scale used for
// target comparison and attempt history.
func (s ScoreResult) Percent() int {
	return int(math.Round(s.ArgumentStrength * 100))
}

// Validate checks every metric against its contract. Out-of-range values are
// rejected rather than clamped.
func (s ScoreResult) Validate() error {
	metrics := []struct {
		name  string
		value float64
	}{
		{"coherence", s.Coherence},
		{"relevance", s.Relevance},
		{"evidenceStrength", s.EvidenceStrength},
		{"fallacyPenalty", s.FallacyPenalty},
		{"argumentStrength", s.ArgumentStrength},
	}
	for _, m := range metrics {
		if m.value < 0 || m.value > 1 {
			return fmt.Errorf("metric %s out of range: %v", m.name, m.value)
		}
	}
	if s.Details.SentenceCount < 0 {
		return fmt.Errorf("negative sentenceCount: %d", s.Details.SentenceCount)
	}
	if s.Details.EvidenceCount < 0 {
		return fmt.Errorf("negative evidenceCount: %d", s.Details.EvidenceCount)
	}
	return nil
}

// ParseScoreResult decodes a scoring engine response defensively. A payload
// missing argumentStrength or carrying any metric outside [0,1] is a scoring
// error, never silently coerced.
func ParseScoreResult(data []byte) (ScoreResult, error) {
	var wire struct {
		Coherence        *float64     `json:"coherence"`
		Relevance        *float64     `json:"relevance"`
		EvidenceStrength *float64     `json:"evidenceStrength"`
		FallacyPenalty   *float64     `json:"fallacyPenalty"`
		ArgumentStrength *float64     `json:"argumentStrength"`
		Details          ScoreDetails `json:"details"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return ScoreResult{}, fmt.Errorf("malformed score payload: %w", err)
	}
	if wire.ArgumentStrength == nil {
		return ScoreResult{}, errors.New("score payload missing argumentStrength")
	}
	deref := func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	}
	result := ScoreResult{
		Coherence:        deref(wire.Coherence),
		Relevance:        deref(wire.Relevance),
		EvidenceStrength: deref(wire.EvidenceStrength),
		FallacyPenalty:   deref(wire.FallacyPenalty),
		ArgumentStrength: *wire.ArgumentStrength,
		Details:          wire.Details,
	}
	if err := result.Validate(); err != nil {
		return ScoreResult{}, err
	}
	return result, nil
}
