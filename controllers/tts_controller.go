package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"courtroom/apperrors"
	"courtroom/services"
)

type TTSController struct {
	Synthesizer services.SpeechSynthesizer
}

type TextToSpeechRequest struct {
	Text     string `json:"text" binding:"required"`
	Avatar   int    `json:"avatar" binding:"required"`
	ModelVer string `json:"model_ver"`
}

// TextToSpeech renders the text with the avatar's voice and streams the MP3
// back as an attachment. Synthesis problems surface with diagnostic detail.
func (tc *TTSController) TextToSpeech(c *gin.Context) {
	var req TextToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	audio, err := tc.Synthesizer.Synthesize(c.Request.Context(), req.Text, req.Avatar, req.ModelVer)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfigMissing) {
			c.JSON(500, gin.H{"error": "Speech synthesis is not configured: " + err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Speech synthesis failed: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=speech.mp3")
	c.Data(200, "audio/mpeg", audio)
}
