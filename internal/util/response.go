package util

import (
	"net/http"

	"phish_trainer/pkg/api"
	"phish_trainer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Success writes a 200 envelope carrying message.
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, api.Response{
		Success: true,
		Message: message,
	})
}

// Failure writes a failed envelope; the message is what the user sees.
func Failure(c *gin.Context, code int, message string) {
	c.JSON(code, api.Response{
		Success: false,
		Message: message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	Failure(c, http.StatusUnauthorized, message)
}

func BadRequest(c *gin.Context, message string) {
	Failure(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Failure(c, http.StatusNotFound, message)
}

// LogInternalError keeps err in the log and shows only message.
func LogInternalError(c *gin.Context, err error, message string) {
	logger.Log.Error("Internal server error",
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(ContextRequestID)),
	)
	Failure(c, http.StatusInternalServerError, message)
}
