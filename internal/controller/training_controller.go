package controller

import (
	"errors"
	"net/http"
	"strconv"

	"phish_trainer/internal/model"
	"phish_trainer/internal/service"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"
	"phish_trainer/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrainingController struct {
	TrainingService *service.TrainingService
	Messages        i18n.Catalog
}

func NewTrainingController(trainingService *service.TrainingService, messages i18n.Catalog) *TrainingController {
	return &TrainingController{
		TrainingService: trainingService,
		Messages:        messages,
	}
}

// TestListResponse lists the active tests with the caller's progress.
// swagger:model TestListResponse
type TestListResponse struct {
	Success bool                `json:"success"`
	Tests   []model.TestSummary `json:"tests"`
}

// ListTests godoc
// @Summary Active tests
// @Description Active phishing tests, newest first, with the caller's status on each
// @Tags training
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TestListResponse "Tests"
// @Failure 401 {object} api.Response "Authorization required"
// @Router /tests [get]
func (c *TrainingController) ListTests(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	tests, err := c.TrainingService.ListTests(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err, c.Messages.T(i18n.InvalidRequest))
		return
	}
	ctx.JSON(http.StatusOK, TestListResponse{Success: true, Tests: tests})
}

// SubmitTest godoc
// @Summary Submit test answers
// @Description Grades the answers, records the attempt and updates the caller's progress
// @Tags training
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Test ID"
// @Param body body api.TestSubmission true "Answers keyed by question id"
// @Success 200 {object} api.SubmitResponse "Graded"
// @Failure 400 {object} api.Response "Invalid request"
// @Failure 401 {object} api.Response "Authorization required"
// @Failure 404 {object} api.Response "Test not found"
// @Router /test/{id}/submit [post]
func (c *TrainingController) SubmitTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	testID := util.MustParseUint(ctx.Param("id"))
	if testID == 0 {
		util.NotFound(ctx, c.Messages.T(i18n.TestNotFound))
		return
	}

	var sub api.TestSubmission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, c.Messages.T(i18n.InvalidRequest))
		return
	}

	grade, err := c.TrainingService.Submit(ctx.Request.Context(), claims.UserID, testID, sub)
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx, c.Messages.T(i18n.TestNotFound))
			return
		}
		util.LogInternalError(ctx, err, c.Messages.T(i18n.TestSaveFailed))
		return
	}

	monitoring.TestSubmissions.Observe(float64(grade.Percentage))
	logger.Log.Info("Test submitted",
		zap.Uint("user_id", claims.UserID),
		zap.Uint("test_id", testID),
		zap.Int("percentage", grade.Percentage),
	)

	ctx.JSON(http.StatusOK, api.SubmitResponse{
		Success:    true,
		Score:      grade.Score,
		MaxScore:   grade.MaxScore,
		Percentage: grade.Percentage,
	})
}

// HistoryResponse lists the caller's recorded attempts.
// swagger:model HistoryResponse
type HistoryResponse struct {
	Success bool                 `json:"success"`
	Results []model.HistoryEntry `json:"results"`
}

// TestHistory godoc
// @Summary Test history
// @Description The caller's attempts, newest first, with the graded answers
// @Tags training
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of attempts (default and cap 200)"
// @Success 200 {object} HistoryResponse "Attempts"
// @Failure 401 {object} api.Response "Authorization required"
// @Router /test_results [get]
func (c *TrainingController) TestHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))
	results, err := c.TrainingService.History(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err, c.Messages.T(i18n.HistoryUnavailable))
		return
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Success: true, Results: results})
}

// CreateTest godoc
// @Summary Create a test
// @Description Admin only. Adds an active test with its questions
// @Tags training
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body api.CreateTestRequest true "Test and questions"
// @Success 201 {object} api.CreateTestResponse "Created"
// @Failure 400 {object} api.Response "Invalid test"
// @Failure 403 {object} api.Response "Insufficient permissions"
// @Router /create_test [post]
func (c *TrainingController) CreateTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, c.Messages.T(i18n.AuthRequired))
		return
	}

	var req api.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, c.Messages.T(i18n.InvalidTest))
		return
	}

	test, err := c.TrainingService.CreateTest(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidTest) {
			logger.Log.Info("Test rejected", zap.Uint("user_id", claims.UserID), zap.Error(err))
			util.BadRequest(ctx, c.Messages.T(i18n.InvalidTest))
			return
		}
		util.LogInternalError(ctx, err, c.Messages.T(i18n.TestCreateFailed))
		return
	}

	logger.Log.Info("Test created",
		zap.Uint("test_id", test.ID),
		zap.Uint("created_by", claims.UserID),
		zap.Int("questions", len(test.Questions)),
	)
	ctx.JSON(http.StatusCreated, api.CreateTestResponse{
		Success: true,
		Message: c.Messages.T(i18n.TestCreated),
		TestID:  test.ID,
	})
}

// DeleteTest godoc
// @Summary Delete a test
// @Description Admin only. Retires the test; recorded results are kept
// @Tags training
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Test ID"
// @Success 200 {object} api.Response "Deleted"
// @Failure 403 {object} api.Response "Insufficient permissions"
// @Failure 404 {object} api.Response "Test not found"
// @Router /delete_test/{id} [post]
func (c *TrainingController) DeleteTest(ctx *gin.Context) {
	testID := util.MustParseUint(ctx.Param("id"))
	if testID == 0 {
		util.NotFound(ctx, c.Messages.T(i18n.TestNotFound))
		return
	}

	if err := c.TrainingService.DeleteTest(testID); err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx, c.Messages.T(i18n.TestNotFound))
			return
		}
		util.LogInternalError(ctx, err, c.Messages.T(i18n.TestDeleteFailed))
		return
	}

	logger.Log.Info("Test deleted", zap.Uint("test_id", testID))
	util.Success(ctx, c.Messages.T(i18n.TestDeleted))
}
