package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusvoice/backend/internal/logger"
)

// RequestLogger logs one line per HTTP request. Used instead of
// gin.Default's logger so everything goes through logrus.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		userID := uint(0)
		if id, exists := c.Get("user_id"); exists {
			if value, ok := id.(uint); ok {
				userID = value
			}
		}

		logger.Info("request", logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
			"user":    userID,
		})
	}
}
