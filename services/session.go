package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"arguecoach/models"
)

var (
	// ErrBlankInput rejects a submission before any request is issued.
	ErrBlankInput = errors.New("topic and argument must not be blank")
	// ErrRoundInFlight rejects a submission while another is being scored.
	ErrRoundInFlight = errors.New("a submission is already in flight")
	// ErrStaleRound marks a resolution whose round was superseded by a reset;
	// the result is discarded, not applied.
	ErrStaleRound = errors.New("round superseded, result discarded")
)

// PhaseListener observes session phase transitions, e.g. to push them over a
// websocket. It is called with the session mutex held; listeners must not call
// back into the session.
type PhaseListener func(sessionID, phase string)

// Session owns all state for one practice session and is the only place that
// state is mutated. Every mutation goes through a named transition; handlers
// and clients only ever see snapshots.
type Session struct {
	mu sync.Mutex

	id          string
	mode        string
	phase       string
	targetScore int
	topic       string
	argument    string
	results     *models.ScoreResult
	feedback    *models.FeedbackResult
	history     []models.AttemptRecord
	lastError   string
	document    string

	// generation tags each scoring round at issue time; resets bump it so a
	// late resolution from a superseded round cannot touch current state.
	generation uint64

	now      func() time.Time
	listener PhaseListener
}

// NewSession returns an idle training session with the default target score.
func NewSession(id string, listener PhaseListener) *Session {
	return &Session{
		id:          id,
		mode:        models.ModeTraining,
		phase:       models.PhaseIdle,
		targetScore: models.DefaultTargetScore,
		history:     ClearAttempts(),
		now:         time.Now,
		listener:    listener,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) setPhase(phase string) {
	s.phase = phase
	if s.listener != nil {
		s.listener(s.id, phase)
	}
}

// BeginSubmit starts a scoring round. Blank input and concurrent rounds are
// rejected before any request is issued. On success the previous error is
// cleared and the returned generation must accompany every later resolution
// of this round.
func (s *Session) BeginSubmit(topic, argument string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(topic) == "" || strings.TrimSpace(argument) == "" {
		return 0, ErrBlankInput
	}
	if s.phase == models.PhaseSubmitting || s.phase == models.PhaseFeedbackPending {
		return 0, ErrRoundInFlight
	}

	s.topic = topic
	s.argument = argument
	s.lastError = ""
	s.generation++
	s.setPhase(models.PhaseSubmitting)
	return s.generation, nil
}

// ScoringSucceeded applies a scoring result: the attempt is appended to
// history and the session moves on to the feedback decision. It returns the
// target score in effect at this moment, which is the one the feedback
// decision must use.
func (s *Session) ScoringSucceeded(gen uint64, result models.ScoreResult) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return 0, ErrStaleRound
	}

	s.results = &result
	s.feedback = nil
	s.history = AppendAttempt(s.history, result.Percent(), s.now())
	s.setPhase(models.PhaseScored)
	s.setPhase(models.PhaseFeedbackPending)
	return s.targetScore, nil
}

// ScoringFailed records a scoring failure: the error becomes user-visible,
// partial results are discarded, no history entry is appended, and the session
// returns to idle.
func (s *Session) ScoringFailed(gen uint64, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleRound
	}

	s.lastError = message
	s.results = nil
	s.feedback = nil
	s.setPhase(models.PhaseIdle)
	return nil
}

// FeedbackResolved completes a round with its feedback.
func (s *Session) FeedbackResolved(gen uint64, feedback models.FeedbackResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleRound
	}

	s.feedback = &feedback
	s.setPhase(models.PhaseFeedbackReady)
	return nil
}

// SetTarget adjusts the target score. It is permitted in any phase and takes
// effect on the next completed round's feedback decision; already-rendered
// feedback is never reclassified.
func (s *Session) SetTarget(target int) error {
	if target < models.MinTargetScore || target > models.MaxTargetScore {
		return fmt.Errorf("target score must be between %d and %d", models.MinTargetScore, models.MaxTargetScore)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetScore = target
	return nil
}

// ResetTraining is the "Try Again" transition: results, feedback and the
// argument are cleared; topic, target score and history survive.
func (s *Session) ResetTraining() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = nil
	s.feedback = nil
	s.argument = ""
	s.lastError = ""
	s.generation++
	s.setPhase(models.PhaseIdle)
}

// ResetAll clears everything except the target score, which is independent
// session configuration untouched by any reset.
func (s *Session) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetAllLocked()
}

func (s *Session) resetAllLocked() {
	s.results = nil
	s.feedback = nil
	s.argument = ""
	s.topic = ""
	s.document = ""
	s.lastError = ""
	s.history = ClearAttempts()
	s.generation++
	s.setPhase(models.PhaseIdle)
}

// SwitchMode changes between training and document mode, performing a full
// reset. Switching to the current mode is a no-op.
func (s *Session) SwitchMode(mode string) error {
	if mode != models.ModeTraining && mode != models.ModeDocument {
		return fmt.Errorf("unknown mode %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == s.mode {
		return nil
	}
	s.mode = mode
	s.resetAllLocked()
	return nil
}

// SetDocument records the selected document name for document mode.
func (s *Session) SetDocument(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = name
}

// Mode returns the current session mode.
func (s *Session) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Snapshot returns a copy of the session state safe to render or marshal.
func (s *Session) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SessionState{
		ID:           s.id,
		Mode:         s.mode,
		Phase:        s.phase,
		TargetScore:  s.targetScore,
		Topic:        s.topic,
		Argument:     s.argument,
		History:      make([]models.AttemptRecord, len(s.history)),
		Error:        s.lastError,
		DocumentName: s.document,
	}
	copy(state.History, s.history)
	if s.results != nil {
		r := *s.results
		state.Results = &r
	}
	if s.feedback != nil {
		f := *s.feedback
		state.Feedback = &f
	}
	return state
}

// SubmitRound drives one full scoring round through the named transitions:
// submit, score, append history, obtain feedback. A reset issued while the
// round is in flight supersedes it; the late resolution is silently dropped.
func (s *Session) SubmitRound(ctx context.Context, scorer ArgumentScorer, feedback *FeedbackService, topic, argument string) (state models.SessionState, err error) {
	gen, err := s.BeginSubmit(topic, argument)
	if err != nil {
		return s.Snapshot(), err
	}

	// A panicking scoring backend must still leave the session in a defined
	// state, or the round stays in flight forever and blocks every later
	// submit.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scoring round panicked: %v", r)
			s.ScoringFailed(gen, "Failed to analyze your argument. Please try again.")
			state = s.Snapshot()
			err = fmt.Errorf("scoring round panicked: %v", r)
		}
	}()

	result, err := scorer.Score(ctx, topic, argument)
	if err != nil {
		if applyErr := s.ScoringFailed(gen, "Failed to analyze your argument. Please try again."); applyErr != nil {
			return s.Snapshot(), nil
		}
		return s.Snapshot(), fmt.Errorf("scoring failed: %w", err)
	}

	target, err := s.ScoringSucceeded(gen, result)
	if err != nil {
		return s.Snapshot(), nil
	}

	fb := feedback.ObtainFeedback(ctx, result, topic, argument, target)
	if err := s.FeedbackResolved(gen, fb); err != nil {
		return s.Snapshot(), nil
	}
	return s.Snapshot(), nil
}
