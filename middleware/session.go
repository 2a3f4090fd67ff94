package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	sessionKey    = "session_id"
	// Cookie lifetime mirrors the cart TTL in Redis.
	sessionMaxAge = 7 * 24 * 3600
)

// CartSession reads the session cookie or mints one, and exposes the
// session id to handlers. The cart lives and dies with this id.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// GetSessionID returns the cart session id set by CartSession.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(sessionKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
