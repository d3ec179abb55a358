package routes

import (
	"github.com/gin-gonic/gin"

	"courtroom/controllers"
)

// Setup registers the debate-practice API on the router.
func Setup(router *gin.Engine, debate *controllers.DebateController, profile *controllers.ProfileController, tts *controllers.TTSController) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/get-topic", debate.GetTopic)
	router.GET("/get-hints/:topic", debate.GetHints)
	router.POST("/get-counterargument", debate.GetCounterargument)
	router.POST("/get-winner", debate.GetWinner)
	router.POST("/get-feedback", debate.GetFeedback)

	router.POST("/login", profile.Login)
	router.POST("/text-to-speech", tts.TextToSpeech)
}
