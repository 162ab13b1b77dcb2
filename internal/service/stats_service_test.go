package service

import (
	"context"
	"testing"
	"time"

	"phish_trainer/internal/repository"
	"phish_trainer/internal/testutil"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	en := i18n.New(i18n.English)
	ru := i18n.New(i18n.Russian)

	tests := []struct {
		progress int
		catalog  i18n.Catalog
		want     string
	}{
		{0, en, "Advanced"},
		{70, en, "Advanced"},
		{71, en, "Expert"},
		{100, ru, "Эксперт"},
		{42, ru, "Продвинутый"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rank(tt.progress, tt.catalog), "progress %d", tt.progress)
	}
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0, SuccessRate(repository.ResultTotals{}))
	assert.Equal(t, 75, SuccessRate(repository.ResultTotals{Score: 3, MaxScore: 4}))
	assert.Equal(t, 66, SuccessRate(repository.ResultTotals{Score: 2, MaxScore: 3}))
}

func TestStatsForUser(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	mr := miniredis.RunT(t)
	cache := repository.NewStatsCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	svc := NewStatsService(userRepo, trainingRepo, cache, i18n.New(i18n.English))

	user := testutil.CreateUser(t, db, "alice", "secret")
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{"training_progress": 80, "tests_completed": 3}).Error)

	ctx := context.Background()
	stats, err := svc.ForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, &api.UserStats{TrainingProgress: 80, TestsCompleted: 3, SuccessRate: 0, Rank: "Expert"}, stats)

	// served from the cache until invalidated
	require.NoError(t, db.Model(user).Update("training_progress", 10).Error)
	stats, err = svc.ForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, stats.TrainingProgress)

	require.NoError(t, cache.Invalidate(ctx, user.ID))
	stats, err = svc.ForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TrainingProgress)
	assert.Equal(t, "Advanced", stats.Rank)

	_, err = svc.ForUser(ctx, 9999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
