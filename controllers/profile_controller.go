package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"courtroom/apperrors"
	"courtroom/db"
)

// ProfileLogins is the slice of the profile store the login handler needs.
type ProfileLogins interface {
	Login(ctx context.Context, username, difficulty string, avatar *int) (*db.LoginResult, error)
}

type ProfileController struct {
	Store ProfileLogins
}

type LoginRequest struct {
	Username   string `json:"username"`
	Difficulty string `json:"difficulty"`
	Avatar     *int   `json:"avatar"`
}

// Login upserts the profile for the supplied username. A missing username is
// answered as a normal message rather than an HTTP failure to keep the login
// flow simple for the frontend; a duplicate-insert race is a 409.
func (pc *ProfileController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	result, err := pc.Store.Login(c.Request.Context(), req.Username, req.Difficulty, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(200, gin.H{"message": "A username is required to log in."})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(409, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Login failed: " + err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"message": result.Message, "user": result.User})
}
