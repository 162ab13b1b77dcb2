package middleware

import (
	"phish_trainer/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(util.HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(util.ContextRequestID, id)
		c.Header(util.HeaderRequestID, id)
		c.Next()
	}
}
