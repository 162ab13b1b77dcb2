package middleware

import (
	"time"

	"phish_trainer/internal/util"
	"phish_trainer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured entry per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString(util.ContextRequestID)),
		}
		if claims := util.GetUserFromContext(c); claims != nil {
			fields = append(fields, zap.Uint("user_id", claims.UserID))
		}

		switch {
		case status >= 500:
			logger.Log.Error("request", fields...)
		case status >= 400:
			logger.Log.Warn("request", fields...)
		default:
			logger.Log.Debug("request", fields...)
		}
	}
}
