package service

import (
	"context"
	"strconv"
	"testing"

	"phish_trainer/internal/model"
	"phish_trainer/internal/repository"
	"phish_trainer/internal/testutil"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradingFixture() *model.Test {
	single := model.Question{Type: model.SingleChoice, CorrectIndex: []int{1}, Points: 1}
	single.ID = 10
	multi := model.Question{Type: model.MultipleChoice, CorrectIndex: []int{0, 2}, Points: 2, Explanation: "both"}
	multi.ID = 11
	return &model.Test{Questions: []model.Question{single, multi}}
}

func TestGradeTest(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]api.Answer
		score   int
		percent int
	}{
		{"all correct", map[string]api.Answer{"10": {1}, "11": {2, 0}}, 3, 100},
		{"duplicates ignored", map[string]api.Answer{"10": {1}, "11": {0, 2, 2}}, 3, 100},
		{"partial multiple is wrong", map[string]api.Answer{"10": {1}, "11": {0}}, 1, 33},
		{"two picks on single choice", map[string]api.Answer{"10": {1, 0}, "11": {0, 2}}, 2, 66},
		{"nothing answered", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GradeTest(gradingFixture(), tt.answers)
			assert.Equal(t, tt.score, g.Score)
			assert.Equal(t, 3, g.MaxScore)
			assert.Equal(t, tt.percent, g.Percentage)
			assert.Len(t, g.Answers, len(tt.answers))
		})
	}
}

func TestGradeTestSkipsNullAnswers(t *testing.T) {
	g := GradeTest(gradingFixture(), map[string]api.Answer{"10": nil, "11": {0, 2}})
	assert.Equal(t, 2, g.Score)
	assert.NotContains(t, g.Answers, "10")
	assert.Contains(t, g.Answers, "11")
}

func TestGradeTestDetails(t *testing.T) {
	g := GradeTest(gradingFixture(), map[string]api.Answer{"11": {0, 2}})
	detail := g.Answers["11"]
	assert.True(t, detail.Correct)
	assert.Equal(t, []int{0, 2}, detail.CorrectAnswer)
	assert.Equal(t, "both", detail.Explanation)
}

func TestGradeEmptyTest(t *testing.T) {
	g := GradeTest(&model.Test{}, map[string]api.Answer{"1": {0}})
	assert.Zero(t, g.MaxScore)
	assert.Zero(t, g.Percentage)
}

func TestSubmitRecordsResultAndRefreshesStats(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	cache := repository.NewStatsCache(nil, 0)
	svc := NewTrainingService(trainingRepo, cache)
	stats := NewStatsService(userRepo, trainingRepo, cache, i18n.New(i18n.English))
	user := testutil.CreateUser(t, db, "alice", "secret")

	tests, err := svc.ListTests(user.ID)
	require.NoError(t, err)
	require.Len(t, tests, 1)
	test, err := trainingRepo.FindActiveTest(tests[0].ID)
	require.NoError(t, err)

	answers := map[string]api.Answer{}
	for _, q := range test.Questions {
		answers[idKey(q.ID)] = api.Answer(q.CorrectIndex)
	}
	grade, err := svc.Submit(context.Background(), user.ID, test.ID, api.TestSubmission{Answers: answers, TimeSpent: 30})
	require.NoError(t, err)
	assert.Equal(t, 4, grade.Score)
	assert.Equal(t, 4, grade.MaxScore)
	assert.Equal(t, 100, grade.Percentage)

	got, err := stats.ForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.TrainingProgress)
	assert.Equal(t, 1, got.TestsCompleted)
	assert.Equal(t, 100, got.SuccessRate)
	assert.Equal(t, "Expert", got.Rank)
}

func TestSubmitUnknownTest(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTrainingService(repository.NewTrainingRepository(db), nil)

	_, err := svc.Submit(context.Background(), 1, 9999, api.TestSubmission{})
	assert.ErrorIs(t, err, util.ErrTestNotFound)
}

func TestBuildTest(t *testing.T) {
	question := func(mod func(*api.QuestionInput)) api.CreateTestRequest {
		q := api.QuestionInput{QuestionText: "Q", Options: []string{"a", "b", "c"}, CorrectAnswer: api.Answer{1}}
		if mod != nil {
			mod(&q)
		}
		return api.CreateTestRequest{Title: "T", Questions: []api.QuestionInput{q}}
	}

	test, err := BuildTest(3, question(nil))
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyBeginner, test.Difficulty)
	assert.True(t, test.IsActive)
	require.NotNil(t, test.CreatedBy)
	assert.Equal(t, uint(3), *test.CreatedBy)
	require.Len(t, test.Questions, 1)
	assert.Equal(t, model.SingleChoice, test.Questions[0].Type)
	assert.Equal(t, 1, test.Questions[0].Points)
	assert.Equal(t, []int{1}, test.Questions[0].CorrectIndex)

	invalid := map[string]api.CreateTestRequest{
		"difficulty":     {Title: "T", Difficulty: "legendary"},
		"time limit":     {Title: "T", TimeLimit: -1},
		"type":           question(func(q *api.QuestionInput) { q.QuestionType = "essay" }),
		"one option":     question(func(q *api.QuestionInput) { q.Options = []string{"a"} }),
		"no answer":      question(func(q *api.QuestionInput) { q.CorrectAnswer = nil }),
		"answer range":   question(func(q *api.QuestionInput) { q.CorrectAnswer = api.Answer{3} }),
		"negative index": question(func(q *api.QuestionInput) { q.CorrectAnswer = api.Answer{-1} }),
		"points":         question(func(q *api.QuestionInput) { q.Points = -2 }),
	}
	for name, req := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := BuildTest(3, req)
			assert.ErrorIs(t, err, util.ErrInvalidTest)
		})
	}
}

func TestCreateAndDeleteTest(t *testing.T) {
	db := testutil.NewDB(t)
	trainingRepo := repository.NewTrainingRepository(db)
	svc := NewTrainingService(trainingRepo, nil)
	user := testutil.CreateUser(t, db, "alice", "secret")

	test, err := svc.CreateTest(1, api.CreateTestRequest{
		Title:      "Spear phishing",
		Difficulty: "advanced",
		Questions: []api.QuestionInput{
			{QuestionText: "Which are red flags?", QuestionType: "multiple_choice", Options: []string{"a", "b", "c"}, CorrectAnswer: api.Answer{0, 2}, Points: 2},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, test.ID)

	loaded, err := trainingRepo.FindActiveTest(test.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 1)
	assert.Equal(t, []int{0, 2}, loaded.Questions[0].CorrectIndex)

	_, err = svc.Submit(context.Background(), user.ID, test.ID, api.TestSubmission{
		Answers: map[string]api.Answer{idKey(loaded.Questions[0].ID): {2, 0}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTest(test.ID))
	assert.ErrorIs(t, svc.DeleteTest(test.ID), util.ErrTestNotFound)

	_, err = svc.Submit(context.Background(), user.ID, test.ID, api.TestSubmission{})
	assert.ErrorIs(t, err, util.ErrTestNotFound)

	listed, err := svc.ListTests(user.ID)
	require.NoError(t, err)
	for _, s := range listed {
		assert.NotEqual(t, test.ID, s.ID)
	}

	history, err := svc.History(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Spear phishing", history[0].Title)
	assert.Equal(t, model.DifficultyAdvanced, history[0].Difficulty)
	assert.Equal(t, 100, history[0].Percentage)
}

func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
