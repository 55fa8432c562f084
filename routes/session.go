package routes

import (
	"errors"
	"net/http"

	"arguecoach/models"
	"arguecoach/services"
	"arguecoach/websocket"

	"github.com/gin-gonic/gin"
)

// SessionRouter wires the training session endpoints to their services.
type SessionRouter struct {
	Store    *services.SessionStore
	Scorer   services.ArgumentScorer
	Feedback *services.FeedbackService
	Analyzer *services.DocumentAnalyzer
	Hub      *websocket.Hub
}

// Register mounts all session routes on the router.
func (sr *SessionRouter) Register(router *gin.Engine) {
	router.POST("/sessions", sr.CreateSession)
	router.GET("/sessions/:id", sr.GetSession)
	router.POST("/sessions/:id/submit", sr.SubmitArgument)
	router.PUT("/sessions/:id/target", sr.SetTarget)
	router.POST("/sessions/:id/reset", sr.ResetTraining)
	router.PUT("/sessions/:id/mode", sr.SetMode)
	router.GET("/sessions/:id/history", sr.GetHistory)
	router.POST("/sessions/:id/document", sr.AnalyzeDocument)
	router.GET("/sessions/:id/events", sr.SessionEvents)
}

func (sr *SessionRouter) session(c *gin.Context) (*services.Session, bool) {
	session, ok := sr.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return session, true
}

// CreateSession starts a fresh practice session.
func (sr *SessionRouter) CreateSession(c *gin.Context) {
	session := sr.Store.Create()
	c.JSON(http.StatusCreated, session.Snapshot())
}

// GetSession returns the current session state.
func (sr *SessionRouter) GetSession(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// SubmitArgument runs one full scoring round and returns the settled state.
func (sr *SessionRouter) SubmitArgument(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}

	var req models.SubmitArgumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both topic and argument are required"})
		return
	}

	state, err := session.SubmitRound(c.Request.Context(), sr.Scorer, sr.Feedback, req.Topic, req.Argument)
	switch {
	case errors.Is(err, services.ErrBlankInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRoundInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		// Scoring failure: the state carries the user-visible message.
		c.JSON(http.StatusBadGateway, state)
	default:
		c.JSON(http.StatusOK, state)
	}
}

// SetTarget adjusts the session's target score.
func (sr *SessionRouter) SetTarget(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}

	var req models.SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetScore is required"})
		return
	}
	if err := session.SetTarget(req.TargetScore); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// ResetTraining is the "Try Again" action.
func (sr *SessionRouter) ResetTraining(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}
	session.ResetTraining()
	c.JSON(http.StatusOK, session.Snapshot())
}

// SetMode switches between training and document mode, resetting the session.
func (sr *SessionRouter) SetMode(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}

	var req models.SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode is required"})
		return
	}
	if err := session.SwitchMode(req.Mode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// GetHistory returns the session's attempt records in chronological order.
func (sr *SessionRouter) GetHistory(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": session.Snapshot().History})
}

// SessionEvents subscribes the client to phase-transition events.
func (sr *SessionRouter) SessionEvents(c *gin.Context) {
	if _, ok := sr.session(c); !ok {
		return
	}
	sr.Hub.Handler(c)
}
