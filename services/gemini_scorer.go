package services

import (
	"context"
	"encoding/json"
	"fmt"

	"arguecoach/models"
)

// GeminiScorer evaluates arguments directly with the Gemini API instead of a
// self-hosted scoring service.
type GeminiScorer struct {
	Model string
}

func (g *GeminiScorer) Score(ctx context.Context, topic, argument string) (models.ScoreResult, error) {
	prompt := fmt.Sprintf(
		`Act as a debate coach and evaluate the following argument for the topic "%s".

Argument:
%s

Score each dimension as a decimal between 0 and 1:
- coherence: logical flow and use of transitions between claims.
- relevance: how well every point ties back to the topic.
- evidenceStrength: use of concrete examples, statistics, or citations.
- fallacyPenalty: 0 for sound reasoning, higher when logical fallacies appear.
- argumentStrength: overall composite quality.

Required Output Format (JSON):
{
  "coherence": X,
  "relevance": X,
  "evidenceStrength": X,
  "fallacyPenalty": X,
  "argumentStrength": X,
  "details": {
    "sentenceCount": N,
    "evidenceCount": N,
    "fallaciesDetected": ["name", ...]
  }
}

Provide ONLY the JSON output without additional text or markdown formatting.`,
		topic, argument,
	)

	response, err := generateModelText(ctx, g.Model, prompt)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to score argument: %w", err)
	}

	return models.ParseScoreResult([]byte(response))
}

// GeminiAdvisor generates improvement advice with the Gemini API.
type GeminiAdvisor struct {
	Model string
}

func (g *GeminiAdvisor) Advise(ctx context.Context, req models.AdviceRequest) (models.FeedbackResult, error) {
	scores, err := json.Marshal(req.Scores)
	if err != nil {
		return models.FeedbackResult{}, fmt.Errorf("failed to marshal scores: %w", err)
	}

	prompt := fmt.Sprintf(
		`Act as a debate coach. The user argued about the topic "%s" and scored %d out of 100 against a personal target of %d.

Their argument:
%s

Their metric breakdown:
%s

Give concrete coaching to close the gap. Required Output Format (JSON):
{
  "type": "improvement",
  "message": "one encouraging sentence naming how many points they still need",
  "tips": [
    {"metric": "Coherence|Relevance|Evidence|Logic", "tip": "specific actionable advice"},
    ...
  ]
}

Provide ONLY the JSON output without additional text or markdown formatting.`,
		req.Topic, req.Scores.Percent(), req.TargetScore, req.Argument, string(scores),
	)

	response, err := generateModelText(ctx, g.Model, prompt)
	if err != nil {
		return models.FeedbackResult{}, fmt.Errorf("failed to generate advice: %w", err)
	}

	var feedback models.FeedbackResult
	if err := json.Unmarshal([]byte(response), &feedback); err != nil {
		return models.FeedbackResult{}, fmt.Errorf("invalid advice format: %w", err)
	}
	if feedback.Message == "" {
		return models.FeedbackResult{}, fmt.Errorf("advice response missing message")
	}
	return feedback, nil
}
