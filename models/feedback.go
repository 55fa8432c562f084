package models

// Feedback result types. Success means the attempt met the target and carries
// no tips; improvement always carries at least one.
const (
	FeedbackSuccess     = "success"
	FeedbackImprovement = "improvement"
)

// FeedbackTip is one actionable suggestion tied to a named metric.
type FeedbackTip struct {
	Metric string `json:"metric"`
	Tip    string `json:"tip"`
}

// FeedbackResult is the coaching outcome for one completed scoring round,
// either returned by the advice service or synthesized locally.
type FeedbackResult struct {
	Type    string        `json:"type"`
	Message string        `json:"message"`
	Tips    []FeedbackTip `json:"tips"`
}

// AdviceRequest is the payload sent to the remote improvement-advice service.
type AdviceRequest struct {
	Argument    string      `json:"argument"`
	Topic       string      `json:"topic"`
	Scores      ScoreResult `json:"scores"`
	TargetScore int         `json:"target_score"`
}
