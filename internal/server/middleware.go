package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"
)

const rateLimitMessage = "Rate limit exceeded. Please try again in a moment."

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		lvl := level.Debug
		switch {
		case status >= http.StatusInternalServerError:
			lvl = level.Error
		case status >= http.StatusBadRequest:
			lvl = level.Info
		}
		lvl(s.logger).Log(
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client", c.ClientIP(),
		)
	}
}

// rateLimit rejects clients that exceed the limiter's window.
func (s *Server) rateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			level.Warn(s.logger).Log("msg", "rate limit exceeded", "path", c.FullPath(), "client", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": rateLimitMessage})
			return
		}
		c.Next()
	}
}
