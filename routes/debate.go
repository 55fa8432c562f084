package routes

import (
	"net/http"

	"arguecoach/models"
	"arguecoach/services"

	"github.com/gin-gonic/gin"
)

// DebateRouter exposes the bot debater: full simulated debates and live
// counter-arguments.
type DebateRouter struct {
	Service services.DebateBot
}

// Register mounts the debate routes on the router.
func (dr *DebateRouter) Register(router *gin.Engine) {
	router.POST("/debate", dr.RunDebate)
	router.POST("/debate/counter", dr.CounterArgument)
}

// RunDebate simulates a full proposition-vs-opposition debate on the motion.
func (dr *DebateRouter) RunDebate(c *gin.Context) {
	var req models.DebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A topic is required"})
		return
	}

	debate, err := dr.Service.RunDebate(c.Request.Context(), req.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate debate"})
		return
	}
	c.JSON(http.StatusOK, debate)
}

// CounterArgument generates the bot's counter to the user's argument for the
// current round of a live debate.
func (dr *DebateRouter) CounterArgument(c *gin.Context) {
	var req models.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic, user_argument and round are required"})
		return
	}

	counter, err := dr.Service.CounterArgument(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate counter-argument"})
		return
	}
	c.JSON(http.StatusOK, counter)
}
