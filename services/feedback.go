package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"arguecoach/models"
)

// FeedbackAdvisor is the remote improvement-advice service.
type FeedbackAdvisor interface {
	Advise(ctx context.Context, req models.AdviceRequest) (models.FeedbackResult, error)
}

// HTTPAdvisor calls a self-hosted advice service over HTTP.
type HTTPAdvisor struct {
	URL    string
	Client *http.Client
}

func NewHTTPAdvisor(url string, timeout time.Duration) *HTTPAdvisor {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPAdvisor{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (a *HTTPAdvisor) Advise(ctx context.Context, req models.AdviceRequest) (models.FeedbackResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return models.FeedbackResult{}, fmt.Errorf("failed to marshal advice request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, bytes.NewBuffer(payload))
	if err != nil {
		return models.FeedbackResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(httpReq)
	if err != nil {
		return models.FeedbackResult{}, fmt.Errorf("advice request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.FeedbackResult{}, fmt.Errorf("failed to read advice response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.FeedbackResult{}, fmt.Errorf("advice service error (%d): %s", resp.StatusCode, string(body))
	}

	var feedback models.FeedbackResult
	if err := json.Unmarshal(body, &feedback); err != nil {
		return models.FeedbackResult{}, fmt.Errorf("malformed advice payload: %w", err)
	}
	return feedback, nil
}

// FeedbackService decides, once per completed scoring round, whether the
// attempt succeeded or needs coaching, and guarantees the caller always gets a
// usable FeedbackResult.
type FeedbackService struct {
	Advisor FeedbackAdvisor
}

// ObtainFeedback applies the success rule first: a round that meets the target
// returns immediately with no remote call. Below target it asks the advice
// service and trusts a well-formed response verbatim; any failure falls back
// to local synthesis and is never surfaced as an error.
func (f *FeedbackService) ObtainFeedback(ctx context.Context, metrics models.ScoreResult, topic, argument string, target int) models.FeedbackResult {
	if metrics.Percent() >= target {
		return models.FeedbackResult{
			Type:    models.FeedbackSuccess,
			Message: "Congratulations! You've reached your target score!",
			Tips:    []models.FeedbackTip{},
		}
	}

	if f.Advisor != nil {
		feedback, err := f.Advisor.Advise(ctx, models.AdviceRequest{
			Argument:    argument,
			Topic:       topic,
			Scores:      metrics,
			TargetScore: target,
		})
		if err == nil {
			return feedback
		}
		log.Printf("advice service unavailable, synthesizing feedback locally: %v", err)
	}

	return SynthesizeFeedback(metrics, target)
}
