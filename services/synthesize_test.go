package services

import (
	"strings"
	"testing"

	"arguecoach/models"
)

func TestSynthesizeFeedbackAllRulesFire(t *testing.T) {
	metrics := models.ScoreResult{
		Coherence:        0.6,
		Relevance:        0.6,
		EvidenceStrength: 0.5,
		FallacyPenalty:   0.2,
		ArgumentStrength: 0.55,
		Details: models.ScoreDetails{
			FallaciesDetected: []string{"Straw Man"},
		},
	}

	feedback := SynthesizeFeedback(metrics, 80)

	if feedback.Type != models.FeedbackImprovement {
		t.Errorf("Expected improvement type, got %s", feedback.Type)
	}
	if feedback.Message != "You need 25 more points to reach your target. Focus on these areas:" {
		t.Errorf("Unexpected message: %q", feedback.Message)
	}

	wantOrder := []string{"Coherence", "Relevance", "Evidence", "Logic"}
	if len(feedback.Tips) != len(wantOrder) {
		t.Fatalf("Expected %d tips, got %d", len(wantOrder), len(feedback.Tips))
	}
	for i, metric := range wantOrder {
		if feedback.Tips[i].Metric != metric {
			t.Errorf("Tip %d: expected metric %s, got %s", i, metric, feedback.Tips[i].Metric)
		}
	}
	if !strings.Contains(feedback.Tips[3].Tip, "Straw Man") {
		t.Errorf("Logic tip should name the detected fallacy, got %q", feedback.Tips[3].Tip)
	}
}

func TestSynthesizeFeedbackEnumeratesFallaciesInOrder(t *testing.T) {
	metrics := models.ScoreResult{
		Coherence:        0.9,
		Relevance:        0.9,
		EvidenceStrength: 0.9,
		FallacyPenalty:   0.3,
		ArgumentStrength: 0.6,
		Details: models.ScoreDetails{
			FallaciesDetected: []string{"Ad Hominem", "Slippery Slope"},
		},
	}

	feedback := SynthesizeFeedback(metrics, 80)

	if len(feedback.Tips) != 1 {
		t.Fatalf("Expected only the Logic tip, got %d tips", len(feedback.Tips))
	}
	if !strings.Contains(feedback.Tips[0].Tip, "Ad Hominem, Slippery Slope") {
		t.Errorf("Fallacies should be comma-joined in original order, got %q", feedback.Tips[0].Tip)
	}
}

func TestSynthesizeFeedbackGenericLogicTipWithoutFallacyNames(t *testing.T) {
	metrics := models.ScoreResult{
		Coherence:        0.9,
		Relevance:        0.9,
		EvidenceStrength: 0.9,
		FallacyPenalty:   0.5,
		ArgumentStrength: 0.6,
	}

	feedback := SynthesizeFeedback(metrics, 80)

	if len(feedback.Tips) != 1 || feedback.Tips[0].Metric != "Logic" {
		t.Fatalf("Expected a single Logic tip, got %+v", feedback.Tips)
	}
	if strings.Contains(feedback.Tips[0].Tip, "(") {
		t.Errorf("Generic logic tip should not enumerate fallacies, got %q", feedback.Tips[0].Tip)
	}
}

func TestSynthesizeFeedbackGenericTipWhenNoRuleFires(t *testing.T) {
	metrics := models.ScoreResult{
		Coherence:        0.95,
		Relevance:        0.95,
		EvidenceStrength: 0.95,
		FallacyPenalty:   0.0,
		ArgumentStrength: 0.76,
	}

	feedback := SynthesizeFeedback(metrics, 80)

	if feedback.Type != models.FeedbackImprovement {
		t.Errorf("Expected improvement type, got %s", feedback.Type)
	}
	if feedback.Message != "You need 4 more points to reach your target. Focus on these areas:" {
		t.Errorf("Unexpected message: %q", feedback.Message)
	}
	if len(feedback.Tips) != 1 {
		t.Fatalf("Expected exactly one generic tip, got %d", len(feedback.Tips))
	}
	if feedback.Tips[0].Metric != "Overall" {
		t.Errorf("Expected Overall tip, got %s", feedback.Tips[0].Metric)
	}
}

func TestSynthesizeFeedbackComputesNegativeGapCleanly(t *testing.T) {
	metrics := models.ScoreResult{
		Coherence:        0.9,
		Relevance:        0.9,
		EvidenceStrength: 0.9,
		ArgumentStrength: 0.9,
	}

	feedback := SynthesizeFeedback(metrics, 50)

	if feedback.Type != models.FeedbackImprovement {
		t.Errorf("Synthesizer must never return success, got %s", feedback.Type)
	}
	if feedback.Message != "You need -40 more points to reach your target. Focus on these areas:" {
		t.Errorf("Unexpected message: %q", feedback.Message)
	}
	if len(feedback.Tips) == 0 {
		t.Error("Improvement feedback must never have zero tips")
	}
}

func TestSynthesizeFeedbackPreservesRuleOrderForSubsets(t *testing.T) {
	metrics := models.ScoreResult{
		Coherence:        0.9,
		Relevance:        0.5,
		EvidenceStrength: 0.9,
		FallacyPenalty:   0.4,
		ArgumentStrength: 0.6,
	}

	feedback := SynthesizeFeedback(metrics, 80)

	if len(feedback.Tips) != 2 {
		t.Fatalf("Expected 2 tips, got %d", len(feedback.Tips))
	}
	if feedback.Tips[0].Metric != "Relevance" || feedback.Tips[1].Metric != "Logic" {
		t.Errorf("Tips out of order: %+v", feedback.Tips)
	}
}
