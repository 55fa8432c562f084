package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"arguecoach/models"
)

// ArgumentScorer evaluates an argument against its topic. The scoring engine
// is a black box; implementations only guarantee a validated ScoreResult or
// an error.
type ArgumentScorer interface {
	Score(ctx context.Context, topic, argument string) (models.ScoreResult, error)
}

type scoreRequest struct {
	Argument string `json:"argument"`
	Topic    string `json:"topic"`
}

// HTTPScorer calls a self-hosted scoring service over HTTP.
type HTTPScorer struct {
	URL    string
	Client *http.Client
}

// NewHTTPScorer builds a scorer for the given endpoint. A zero timeout
// defaults to 30 seconds.
func NewHTTPScorer(url string, timeout time.Duration) *HTTPScorer {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPScorer{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPScorer) Score(ctx context.Context, topic, argument string) (models.ScoreResult, error) {
	payload, err := json.Marshal(scoreRequest{Argument: argument, Topic: topic})
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(payload))
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to read scoring response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.ScoreResult{}, fmt.Errorf("scoring service error (%d): %s", resp.StatusCode, string(body))
	}

	return models.ParseScoreResult(body)
}
