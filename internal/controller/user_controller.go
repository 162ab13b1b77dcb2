package controller

import (
	"errors"
	"net/http"

	"phish_trainer/internal/model"
	"phish_trainer/internal/service"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	UserService *service.UserService
	Messages    i18n.Catalog
}

func NewUserController(userService *service.UserService, messages i18n.Catalog) *UserController {
	return &UserController{
		UserService: userService,
		Messages:    messages,
	}
}

// CreateUser godoc
// @Summary Create a user
// @Description Admins create any role; organizers create test subjects in their own organization
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body api.CreateUserRequest true "New account"
// @Success 201 {object} api.Response "Created"
// @Failure 400 {object} api.Response "Invalid request"
// @Failure 403 {object} api.Response "Insufficient permissions"
// @Failure 409 {object} api.Response "Username or e-mail taken"
// @Router /create_user [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	var req api.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, c.Messages.T(i18n.InvalidRequest))
		return
	}

	user, err := c.UserService.CreateUserAs(claims.UserID, req)
	switch {
	case err == nil:
		logger.Log.Info("User created",
			zap.Uint("user_id", user.ID),
			zap.Uint("created_by", claims.UserID),
			zap.String("role", string(user.Role)),
		)
		ctx.JSON(http.StatusCreated, api.Response{Success: true, Message: c.Messages.T(i18n.UserCreated)})
	case errors.Is(err, util.ErrRoleNotAllowed):
		util.Failure(ctx, http.StatusForbidden, c.Messages.T(i18n.SubjectsOnly))
	case errors.Is(err, util.ErrInvalidRole):
		util.BadRequest(ctx, c.Messages.T(i18n.InvalidRequest))
	case errors.Is(err, util.ErrUsernameTaken):
		util.Failure(ctx, http.StatusConflict, c.Messages.T(i18n.UsernameTaken))
	case errors.Is(err, util.ErrEmailTaken):
		util.Failure(ctx, http.StatusConflict, c.Messages.T(i18n.EmailTaken))
	case errors.Is(err, util.ErrUserNotFound):
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
	default:
		util.LogInternalError(ctx, err, c.Messages.T(i18n.UserCreateFailed))
	}
}

// UserListResponse lists managed accounts.
// swagger:model UserListResponse
type UserListResponse struct {
	Success      bool                `json:"success"`
	Users        []model.UserSummary `json:"users"`
	Organization string              `json:"organization,omitempty"`
}

// ListUsers godoc
// @Summary Managed users
// @Description Admins see every other active account; organizers see the test subjects they created
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UserListResponse "Users"
// @Failure 403 {object} api.Response "Insufficient permissions"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	users, err := c.UserService.ListUsers(claims.UserID)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, UserListResponse{Success: true, Users: users})
	case errors.Is(err, util.ErrUserNotFound):
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
	case errors.Is(err, util.ErrRoleNotAllowed):
		util.Failure(ctx, http.StatusForbidden, c.Messages.T(i18n.Forbidden))
	default:
		util.LogInternalError(ctx, err, c.Messages.T(i18n.UsersUnavailable))
	}
}

// OrganizationUsers godoc
// @Summary Test subjects of an organization
// @Description Admin only
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param organization path string true "Organization"
// @Success 200 {object} UserListResponse "Users"
// @Failure 403 {object} api.Response "Insufficient permissions"
// @Router /organization_users/{organization} [get]
func (c *UserController) OrganizationUsers(ctx *gin.Context) {
	organization := ctx.Param("organization")
	users, err := c.UserService.OrganizationUsers(organization)
	if err != nil {
		util.LogInternalError(ctx, err, c.Messages.T(i18n.UsersUnavailable))
		return
	}
	ctx.JSON(http.StatusOK, UserListResponse{Success: true, Users: users, Organization: organization})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Admins delete any other account; organizers delete the test subjects they created
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} api.Response "Deleted"
// @Failure 400 {object} api.Response "Own account"
// @Failure 403 {object} api.Response "Insufficient permissions"
// @Failure 404 {object} api.Response "User not found"
// @Router /delete_user/{id} [post]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	targetID := util.MustParseUint(ctx.Param("id"))
	if targetID == 0 {
		util.NotFound(ctx, c.Messages.T(i18n.UserNotFound))
		return
	}

	err := c.UserService.DeleteUserAs(claims.UserID, targetID)
	switch {
	case err == nil:
		logger.Log.Info("User deleted", zap.Uint("user_id", targetID), zap.Uint("deleted_by", claims.UserID))
		util.Success(ctx, c.Messages.T(i18n.UserDeleted))
	case errors.Is(err, util.ErrSelfDelete):
		util.BadRequest(ctx, c.Messages.T(i18n.SelfDelete))
	case errors.Is(err, util.ErrDeleteNotAllowed):
		util.Failure(ctx, http.StatusForbidden, c.Messages.T(i18n.DeleteNotAllowed))
	case errors.Is(err, util.ErrTargetUserNotFound):
		util.NotFound(ctx, c.Messages.T(i18n.UserNotFound))
	case errors.Is(err, util.ErrUserNotFound):
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
	default:
		util.LogInternalError(ctx, err, c.Messages.T(i18n.UserDeleteFailed))
	}
}
