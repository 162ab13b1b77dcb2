package controller

import (
	"errors"
	"net/http"

	"phish_trainer/internal/service"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
	Messages     i18n.Catalog
}

func NewStatsController(statsService *service.StatsService, messages i18n.Catalog) *StatsController {
	return &StatsController{
		StatsService: statsService,
		Messages:     messages,
	}
}

// GetUserStats godoc
// @Summary Dashboard statistics
// @Description Training progress, completed tests, success rate and rank of the caller
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} api.Response{stats=api.UserStats} "Statistics"
// @Failure 401 {object} api.Response "Authorization required"
// @Router /get_user_stats [get]
func (c *StatsController) GetUserStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	stats, err := c.StatsService.ForUser(ctx.Request.Context(), claims.UserID)
	monitoring.DashboardEvents.WithLabelValues("stats_read", monitoring.Result(err == nil)).Inc()
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
			return
		}
		util.LogInternalError(ctx, err, c.Messages.T(i18n.StatsUnavailable))
		return
	}

	ctx.JSON(http.StatusOK, api.Response{Success: true, Stats: stats})
}
