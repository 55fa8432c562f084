package models

// Session modes. Training runs the feedback loop; document analyzes an
// uploaded PDF through the same results shape.
const (
	ModeTraining = "training"
	ModeDocument = "document"
)

// Session phases for the training state machine.
const (
	PhaseIdle            = "idle"
	PhaseSubmitting      = "submitting"
	PhaseScored          = "scored"
	PhaseFeedbackPending = "feedback_pending"
	PhaseFeedbackReady   = "feedback_ready"
)

// Target score bounds and default.
const (
	MinTargetScore     = 50
	MaxTargetScore     = 100
	DefaultTargetScore = 80
)

// AttemptRecord is one completed scoring round in the session history.
type AttemptRecord struct {
	Score     int    `json:"score"`
	Timestamp string `json:"timestamp"`
}

// SessionState is the JSON snapshot of a training session returned to the
// frontend. Results and Feedback are nil until a round completes.
type SessionState struct {
	ID           string          `json:"id"`
	Mode         string          `json:"mode"`
	Phase        string          `json:"phase"`
	TargetScore  int             `json:"targetScore"`
	Topic        string          `json:"topic"`
	Argument     string          `json:"argument"`
	Results      *ScoreResult    `json:"results,omitempty"`
	Feedback     *FeedbackResult `json:"feedback,omitempty"`
	History      []AttemptRecord `json:"history"`
	Error        string          `json:"error,omitempty"`
	DocumentName string          `json:"documentName,omitempty"`
}

// SubmitArgumentRequest is the payload for a training submission.
type SubmitArgumentRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Argument string `json:"argument" binding:"required"`
}

// SetTargetRequest adjusts the session target score.
type SetTargetRequest struct {
	TargetScore int `json:"targetScore" binding:"required"`
}

// SetModeRequest switches the session mode.
type SetModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}
