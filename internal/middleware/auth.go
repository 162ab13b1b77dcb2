package middleware

import (
	"net/http"
	"strings"

	"phish_trainer/internal/config"
	"phish_trainer/internal/model"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tokenFromRequest prefers the Authorization header (CLI) over the session
// cookie (browser).
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func AuthMiddleware(cfg *config.Config, messages i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, cfg.JWT.CookieName)
		if tokenString == "" {
			util.Unauthorized(c, messages.T(i18n.AuthRequired))
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("rejected session token", zap.Error(err))
			util.Unauthorized(c, messages.T(i18n.AuthRequired))
			c.Abort()
			return
		}

		c.Set(util.ContextUser, claims)
		c.Next()
	}
}

func RoleMiddleware(messages i18n.Catalog, roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c, messages.T(i18n.AuthRequired))
			c.Abort()
			return
		}

		hasRole := user.Role == model.Admin
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Failure(c, http.StatusForbidden, messages.T(i18n.Forbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}
