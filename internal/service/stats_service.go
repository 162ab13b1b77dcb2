package service

import (
	"context"
	"errors"

	"phish_trainer/internal/repository"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"
	"phish_trainer/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExpertThreshold is the training progress above which the rank is Expert.
const ExpertThreshold = 70

type StatsService struct {
	UserRepo     *repository.UserRepository
	TrainingRepo *repository.TrainingRepository
	Cache        *repository.StatsCache
	Messages     i18n.Catalog
}

func NewStatsService(userRepo *repository.UserRepository, trainingRepo *repository.TrainingRepository, cache *repository.StatsCache, messages i18n.Catalog) *StatsService {
	return &StatsService{
		UserRepo:     userRepo,
		TrainingRepo: trainingRepo,
		Cache:        cache,
		Messages:     messages,
	}
}

// SuccessRate is the whole percentage of points scored over points
// available, 0 when nothing was attempted.
func SuccessRate(totals repository.ResultTotals) int {
	if totals.MaxScore <= 0 {
		return 0
	}
	return int(totals.Score * 100 / totals.MaxScore)
}

// Rank returns the localized rank for a training progress value.
func Rank(progress int, messages i18n.Catalog) string {
	if progress > ExpertThreshold {
		return messages.T(i18n.RankExpert)
	}
	return messages.T(i18n.RankAdvanced)
}

// ForUser returns the dashboard stats of userID, served from the cache
// when it holds a fresh copy.
func (s *StatsService) ForUser(ctx context.Context, userID uint) (*api.UserStats, error) {
	ctx, span := tracing.Tracer.Start(ctx, "StatsService.ForUser")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", int64(userID)))

	if cached, err := s.Cache.Get(ctx, userID); err != nil {
		logger.Log.Warn("Stats cache read failed", zap.Uint("user_id", userID), zap.Error(err))
	} else if cached != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	totals, err := s.TrainingRepo.Totals(userID)
	if err != nil {
		return nil, err
	}

	stats := &api.UserStats{
		TrainingProgress: user.TrainingProgress,
		TestsCompleted:   user.TestsCompleted,
		SuccessRate:      SuccessRate(totals),
		Rank:             Rank(user.TrainingProgress, s.Messages),
	}

	if err := s.Cache.Set(ctx, userID, stats); err != nil {
		logger.Log.Warn("Stats cache write failed", zap.Uint("user_id", userID), zap.Error(err))
	}
	return stats, nil
}
