package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"robux-storefront/internal/gate"
)

const (
	sessionCookie = "sid"
	unlockCookie  = "storefront_unlock"
	sessionKey    = "session_id"
)

// sessionMiddleware assigns every client a stable session ID cookie.
// The ID keys the client's cart, remembered contact and gate attempts.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// gateRequired turns away clients without a valid unlock token. The
// gate is a cosmetic speed bump, not an auth system; treat a missing
// token as "show the gate screen", nothing more.
func gateRequired(tokens *gate.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(unlockCookie)
		if err != nil || !tokens.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "gate locked"})
			return
		}
		c.Next()
	}
}
