package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"robux-storefront/internal/gate"
)

type gateRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *handlers) gateSubmit(c *gin.Context) {
	var req gateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "password required"})
		return
	}

	sid := sessionID(c)
	err := h.deps.Gate.Submit(sid, req.Password)
	switch {
	case err == nil:
		token, issueErr := h.deps.Tokens.Issue()
		if issueErr != nil {
			h.logger.Printf("issue unlock token: %v", issueErr)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "try again"})
			return
		}
		maxAge := int(h.deps.Tokens.TTL() / time.Second)
		c.SetCookie(unlockCookie, token, maxAge, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"unlocked": true})
	case errors.Is(err, gate.ErrLocked):
		var locked *gate.LockedError
		retry := 0
		if errors.As(err, &locked) {
			retry = int(locked.Remaining / time.Second)
		}
		c.JSON(http.StatusTooManyRequests, gin.H{
			"message":           "access blocked",
			"retryAfterSeconds": retry,
		})
	default:
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":           "wrong password",
			"attemptsRemaining": h.deps.Gate.RemainingAttempts(sid),
		})
	}
}
