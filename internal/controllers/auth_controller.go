package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realstate/internal/auth"
)

// tokenInput is the token issuance request body.
type tokenInput struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthController issues access tokens for clients that have completed
// sign-in out-of-band.
type AuthController struct {
	Tokens *auth.TokenService
}

func NewAuthController(tokens *auth.TokenService) *AuthController {
	return &AuthController{Tokens: tokens}
}

// IssueToken signs an access token for the given email.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.Tokens.Issue(input.Email)
	switch {
	case errors.Is(err, auth.ErrNoSecret):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "token issuance is not available"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
	default:
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
