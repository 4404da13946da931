package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userCookie    = "studium_user"
	userCookieAge = 365 * 24 * 60 * 60
	userIDKey     = "user_id"
)

// identify assigns each visitor a stable anonymous user id via cookie.
func (s *Server) identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(userCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(userCookie, id, userCookieAge, "/", "", false, true)
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
