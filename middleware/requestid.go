package middleware

import (
	"mojamalca-api/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags every request with a unique ID, echoes it in the
// response header, and stashes a request-scoped logger in the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		ctxLogger := logger.L().With(zap.String("request_id", requestID))
		c.Set("logger", ctxLogger)

		c.Next()
	}
}

// RequestLogger returns the request-scoped logger, falling back to the
// global one when the middleware did not run (tests, websocket upgrades).
func RequestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		return l.(*zap.Logger)
	}
	return logger.L()
}
