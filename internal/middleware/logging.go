package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const ctxLoggerKey = "requestLogger"

// RequestLogger tags every request with a uuid and emits one structured log
// line per request. The request-scoped logger is stored in the context for
// handlers that log upstream fetch failures.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		reqLog := logger.With().
			Str("requestId", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()

		c.Set(ctxLoggerKey, reqLog)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		reqLog.Info().
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// GetLoggerFromContext returns the request-scoped logger, or a disabled one
// when the middleware did not run (e.g. bare test routers). The pointer
// keeps zerolog's level methods, which take a pointer receiver, callable
// directly on the return value.
func GetLoggerFromContext(c *gin.Context) *zerolog.Logger {
	if value, exists := c.Get(ctxLoggerKey); exists {
		if logger, ok := value.(zerolog.Logger); ok {
			return &logger
		}
	}
	nop := zerolog.Nop()
	return &nop
}
