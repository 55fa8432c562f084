package services

import (
	"fmt"
	"strings"

	"arguecoach/models"
)

// Metric thresholds below (or above, for fallacies) which a coaching tip is
// emitted. The rule order is fixed: Coherence, Relevance, Evidence, Logic.
const (
	coherenceFloor = 0.75
	relevanceFloor = 0.80
	evidenceFloor  = 0.70
	fallacyCeiling = 0.10
)

// SynthesizeFeedback builds improvement feedback locally from the metrics
// alone, used when the remote advice service is unreachable or declines. It is
// pure and deterministic; it never returns a success-typed result, and always
// returns at least one tip.
func SynthesizeFeedback(metrics models.ScoreResult, target int) models.FeedbackResult {
	gap := target - metrics.Percent()

	var tips []models.FeedbackTip
	if metrics.Coherence < coherenceFloor {
		tips = append(tips, models.FeedbackTip{
			Metric: "Coherence",
			Tip:    "Use explicit transitions and connective language so each claim builds on the previous one.",
		})
	}
	if metrics.Relevance < relevanceFloor {
		tips = append(tips, models.FeedbackTip{
			Metric: "Relevance",
			Tip:    "Make sure every point ties back to the stated topic.",
		})
	}
	if metrics.EvidenceStrength < evidenceFloor {
		tips = append(tips, models.FeedbackTip{
			Metric: "Evidence",
			Tip:    "Support your claims with concrete examples, statistics, or citations.",
		})
	}
	if metrics.FallacyPenalty > fallacyCeiling {
		tip := "Watch for logical fallacies; make sure each conclusion follows from its premises."
		if len(metrics.Details.FallaciesDetected) > 0 {
			tip = fmt.Sprintf("Your argument contains logical fallacies (%s). Rework these points with sound reasoning.",
				strings.Join(metrics.Details.FallaciesDetected, ", "))
		}
		tips = append(tips, models.FeedbackTip{Metric: "Logic", Tip: tip})
	}
	if len(tips) == 0 {
		tips = append(tips, models.FeedbackTip{
			Metric: "Overall",
			Tip:    "Develop your argument more deeply and back it with stronger evidence.",
		})
	}

	return models.FeedbackResult{
		Type:    models.FeedbackImprovement,
		Message: fmt.Sprintf("You need %d more points to reach your target. Focus on these areas:", gap),
		Tips:    tips,
	}
}
