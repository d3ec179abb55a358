package controllers

import (
	"github.com/gin-gonic/gin"

	"courtroom/services"
)

// DebateController owns the topic/hints/counterargument/judging pipeline.
type DebateController struct {
	Topics   *services.TopicService
	Hints    *services.HintService
	Opponent *services.OpponentService
	Judge    *services.JudgeService
}

type CounterargumentRequest struct {
	Topic            string `json:"topic" binding:"required"`
	Difficulty       string `json:"difficulty" binding:"required"`
	PlayerTranscript string `json:"player_transcript"`
	Role             string `json:"role"`
}

type WinnerRequest struct {
	Argument        string `json:"argument" binding:"required"`
	Counterargument string `json:"counterargument" binding:"required"`
	Topic           string `json:"topic" binding:"required"`
}

type FeedbackRequest struct {
	Argument string `json:"argument" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
}

// GetTopic serves a random debate topic. It never fails.
func (dc *DebateController) GetTopic(c *gin.Context) {
	c.JSON(200, gin.H{"topic": dc.Topics.RandomTopic()})
}

// GetHints serves background reading for the topic in the path. It never
// fails; every upstream problem degrades inside the service.
func (dc *DebateController) GetHints(c *gin.Context) {
	topic := c.Param("topic")
	c.JSON(200, gin.H{"hints": dc.Hints.Hints(c.Request.Context(), topic)})
}

// GetCounterargument serves the AI opponent's rebuttal. Generation failures
// degrade to a canned response inside the service.
func (dc *DebateController) GetCounterargument(c *gin.Context) {
	var req CounterargumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	argument := dc.Opponent.Counterargument(c.Request.Context(), req.Topic, req.Difficulty, req.PlayerTranscript, req.Role)
	c.JSON(200, gin.H{"argument": argument})
}

// GetWinner judges a finished debate. Failures surface: a silently wrong
// verdict would be worse than an error.
func (dc *DebateController) GetWinner(c *gin.Context) {
	var req WinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	winner, err := dc.Judge.Winner(c.Request.Context(), req.Argument, req.Counterargument, req.Topic)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to judge debate: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"winner": winner})
}

// GetFeedback critiques the user's argument. Failures surface.
func (dc *DebateController) GetFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	feedback, err := dc.Judge.Feedback(c.Request.Context(), req.Argument, req.Topic)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate feedback: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"feedback": feedback})
}
