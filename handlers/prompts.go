package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardbox/launcher"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// RunPromptRequest launches a prompt in the external chat tool. An
// empty prompt opens the bare chat page.
type RunPromptRequest struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"systemPrompt"`
}

func RunPrompt(l *launcher.Launcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RunPromptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		url, err := l.Run(req.Prompt, req.SystemPrompt)
		if err != nil {
			if errors.Is(err, launcher.ErrBlocked) {
				c.JSON(http.StatusForbidden, gin.H{"error": "blocked external URL"})
				return
			}
			log.Printf("RunPrompt error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to launch prompt"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
