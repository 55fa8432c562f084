package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arguecoach/models"
)

func TestHTTPScorerParsesValidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Argument string `json:"argument"`
			Topic    string `json:"topic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Argument == "" || req.Topic == "" {
			t.Errorf("Malformed scoring request: %+v (%v)", req, err)
		}
		json.NewEncoder(w).Encode(models.ScoreResult{
			Coherence:        0.8,
			Relevance:        0.85,
			EvidenceStrength: 0.7,
			FallacyPenalty:   0.05,
			ArgumentStrength: 0.75,
		})
	}))
	defer server.Close()

	scorer := NewHTTPScorer(server.URL, 0)
	result, err := scorer.Score(context.Background(), "topic", "argument")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Percent() != 75 {
		t.Errorf("Expected percent 75, got %d", result.Percent())
	}
}

func TestHTTPScorerNonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scoring engine down", http.StatusInternalServerError)
	}))
	defer server.Close()

	scorer := NewHTTPScorer(server.URL, 0)
	if _, err := scorer.Score(context.Background(), "topic", "argument"); err == nil {
		t.Error("Expected an error for a non-success status")
	}
}

func TestHTTPScorerRejectsMalformedMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coherence": 0.9}`))
	}))
	defer server.Close()

	scorer := NewHTTPScorer(server.URL, 0)
	if _, err := scorer.Score(context.Background(), "topic", "argument"); err == nil {
		t.Error("Expected an error for a response missing argumentStrength")
	}
}

func TestHTTPAdvisorSendsAdviceRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AdviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Malformed advice request: %v", err)
		}
		if req.TargetScore != 80 {
			t.Errorf("Expected target_score 80, got %d", req.TargetScore)
		}
		json.NewEncoder(w).Encode(models.FeedbackResult{
			Type:    models.FeedbackImprovement,
			Message: "Keep going.",
			Tips:    []models.FeedbackTip{{Metric: "Evidence", Tip: "Add a citation."}},
		})
	}))
	defer server.Close()

	advisor := NewHTTPAdvisor(server.URL, 0)
	feedback, err := advisor.Advise(context.Background(), models.AdviceRequest{
		Argument:    "argument",
		Topic:       "topic",
		Scores:      models.ScoreResult{ArgumentStrength: 0.55},
		TargetScore: 80,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if feedback.Message != "Keep going." {
		t.Errorf("Unexpected feedback: %+v", feedback)
	}
}
