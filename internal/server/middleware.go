package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLog logs one structured line per request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			s.log.Error("request", fields...)
		} else {
			s.log.Info("request", fields...)
		}
	}
}
