package controller

import (
	"errors"
	"net/http"

	"phish_trainer/internal/service"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"
	"phish_trainer/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService *service.AuthService
	Messages    i18n.Catalog
	CookieName  string
	IsRelease   bool
}

func NewAuthController(authService *service.AuthService, messages i18n.Catalog) *AuthController {
	return &AuthController{
		AuthService: authService,
		Messages:    messages,
		CookieName:  authService.Cfg.JWT.CookieName,
		IsRelease:   authService.Cfg.IsRelease(),
	}
}

// Login godoc
// @Summary Sign in
// @Description Checks the credentials, sets the session cookie and returns the token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body api.LoginRequest true "Credentials"
// @Success 200 {object} api.Response "Signed in"
// @Failure 400 {object} api.Response "Invalid request"
// @Failure 401 {object} api.Response "Invalid credentials"
// @Failure 429 {object} api.Response "Too many requests"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req api.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, c.Messages.T(i18n.InvalidRequest))
		return
	}

	token, user, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		monitoring.LoginAttempts.WithLabelValues(monitoring.Result(false)).Inc()
		if errors.Is(err, util.ErrInvalidCredentials) {
			logger.Log.Info("Login rejected", zap.String("username", req.Username), zap.String("ip", ctx.ClientIP()))
			util.Unauthorized(ctx, c.Messages.T(i18n.InvalidCredentials))
			return
		}
		util.LogInternalError(ctx, err, c.Messages.T(i18n.InvalidCredentials))
		return
	}
	monitoring.LoginAttempts.WithLabelValues(monitoring.Result(true)).Inc()
	logger.Log.Info("User signed in", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	maxAge := int(c.AuthService.Cfg.JWT.ExpireTime.Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, token, maxAge, "/", "", c.IsRelease, true)

	ctx.JSON(http.StatusOK, api.Response{
		Success: true,
		Message: c.Messages.T(i18n.LoginSucceeded),
		Token:   token,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response "Signed out"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, c.Messages.T(i18n.LoggedOut))
}
