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

type ProfileController struct {
	ProfileService *service.ProfileService
	Messages       i18n.Catalog
}

func NewProfileController(profileService *service.ProfileService, messages i18n.Catalog) *ProfileController {
	return &ProfileController{
		ProfileService: profileService,
		Messages:       messages,
	}
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Updates the full name, e-mail and security level of the caller
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body api.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} api.Response "Updated"
// @Failure 400 {object} api.Response "Invalid request"
// @Failure 401 {object} api.Response "Authorization required"
// @Failure 409 {object} api.Response "E-mail already in use"
// @Router /update_profile [post]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	var req api.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		monitoring.DashboardEvents.WithLabelValues("profile_update", monitoring.Result(false)).Inc()
		util.BadRequest(ctx, c.Messages.T(i18n.ProfileUpdateFailed))
		return
	}

	err := c.ProfileService.UpdateProfile(claims.UserID, req)
	monitoring.DashboardEvents.WithLabelValues("profile_update", monitoring.Result(err == nil)).Inc()
	switch {
	case err == nil:
		logger.Log.Info("Profile updated", zap.Uint("user_id", claims.UserID))
		util.Success(ctx, c.Messages.T(i18n.ProfileUpdated))
	case errors.Is(err, util.ErrEmailTaken):
		util.Failure(ctx, http.StatusConflict, c.Messages.T(i18n.EmailTaken))
	case errors.Is(err, util.ErrInvalidSecurityLevel):
		util.BadRequest(ctx, c.Messages.T(i18n.ProfileUpdateFailed))
	case errors.Is(err, util.ErrUserNotFound):
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
	default:
		util.LogInternalError(ctx, err, c.Messages.T(i18n.ProfileUpdateFailed))
	}
}

// ChangePassword godoc
// @Summary Change password
// @Description Replaces the caller's password after checking the current one
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body api.PasswordChangeRequest true "Current and new password"
// @Success 200 {object} api.Response "Changed"
// @Failure 400 {object} api.Response "Current password is incorrect"
// @Failure 401 {object} api.Response "Authorization required"
// @Router /change_password [post]
func (c *ProfileController) ChangePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	var req api.PasswordChangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		monitoring.DashboardEvents.WithLabelValues("password_change", monitoring.Result(false)).Inc()
		util.BadRequest(ctx, c.Messages.T(i18n.PasswordChangeFailed))
		return
	}

	err := c.ProfileService.ChangePassword(claims.UserID, req.CurrentPassword, req.NewPassword)
	monitoring.DashboardEvents.WithLabelValues("password_change", monitoring.Result(err == nil)).Inc()
	switch {
	case err == nil:
		logger.Log.Info("Password changed", zap.Uint("user_id", claims.UserID))
		util.Success(ctx, c.Messages.T(i18n.PasswordChanged))
	case errors.Is(err, util.ErrCurrentPasswordWrong):
		util.BadRequest(ctx, c.Messages.T(i18n.CurrentPasswordWrong))
	case errors.Is(err, util.ErrUserNotFound):
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
	default:
		util.LogInternalError(ctx, err, c.Messages.T(i18n.PasswordChangeFailed))
	}
}
