package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"phish_trainer/internal/model"
	"phish_trainer/internal/repository"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/logger"
	"phish_trainer/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TrainingService struct {
	TrainingRepo *repository.TrainingRepository
	Cache        *repository.StatsCache
}

func NewTrainingService(trainingRepo *repository.TrainingRepository, cache *repository.StatsCache) *TrainingService {
	return &TrainingService{
		TrainingRepo: trainingRepo,
		Cache:        cache,
	}
}

type Grade struct {
	Score      int
	MaxScore   int
	Percentage int
	Answers    map[string]model.AnswerDetail
}

func (s *TrainingService) ListTests(userID uint) ([]model.TestSummary, error) {
	return s.TrainingRepo.ListForUser(userID)
}

// GradeTest scores answers against the questions of test. A single choice
// question is correct when exactly one option is chosen and it is a correct
// one; a multiple choice question needs the chosen set to equal the correct
// set. Unanswered (missing or null) questions score nothing and are left out of the details.
func GradeTest(test *model.Test, answers map[string]api.Answer) Grade {
	g := Grade{Answers: make(map[string]model.AnswerDetail)}

	for _, q := range test.Questions {
		g.MaxScore += q.Points

		key := strconv.FormatUint(uint64(q.ID), 10)
		answer, ok := answers[key]
		if !ok || answer == nil {
			continue
		}

		var correct bool
		switch q.Type {
		case model.MultipleChoice:
			correct = sameSet(answer, q.CorrectIndex)
		default:
			correct = len(answer) == 1 && contains(q.CorrectIndex, answer[0])
		}
		if correct {
			g.Score += q.Points
		}

		g.Answers[key] = model.AnswerDetail{
			UserAnswer:    answer,
			Correct:       correct,
			CorrectAnswer: q.CorrectIndex,
			Explanation:   q.Explanation,
		}
	}

	if g.MaxScore > 0 {
		g.Percentage = g.Score * 100 / g.MaxScore
	}
	return g
}

func contains(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sameSet(a, b []int) bool {
	left := make(map[int]bool, len(a))
	for _, v := range a {
		left[v] = true
	}
	right := make(map[int]bool, len(b))
	for _, v := range b {
		right[v] = true
	}
	if len(left) != len(right) {
		return false
	}
	for v := range left {
		if !right[v] {
			return false
		}
	}
	return true
}

// Submit grades and records an attempt, then drops the cached stats of
// the user.
func (s *TrainingService) Submit(ctx context.Context, userID, testID uint, sub api.TestSubmission) (*Grade, error) {
	ctx, span := tracing.Tracer.Start(ctx, "TrainingService.Submit")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", int64(userID)), attribute.Int64("test.id", int64(testID)))

	test, err := s.TrainingRepo.FindActiveTest(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	grade := GradeTest(test, sub.Answers)
	timeSpent := sub.TimeSpent
	if timeSpent < 0 {
		timeSpent = 0
	}

	result := &model.TestResult{
		UserID:      userID,
		TestID:      testID,
		Score:       grade.Score,
		MaxScore:    grade.MaxScore,
		TimeSpent:   timeSpent,
		Answers:     grade.Answers,
		CompletedAt: time.Now(),
	}
	if err := s.TrainingRepo.SaveResult(result); err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warn("Stats cache invalidation failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	span.SetAttributes(attribute.Int("test.percentage", grade.Percentage))
	return &grade, nil
}

// MaxHistory caps how many attempts one history request returns.
const MaxHistory = 200

func (s *TrainingService) History(userID uint, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 || limit > MaxHistory {
		limit = MaxHistory
	}
	return s.TrainingRepo.History(userID, limit)
}

// BuildTest validates req and turns it into a test owned by creatorID.
// Difficulty defaults to beginner, question type to single choice and
// points to 1.
func BuildTest(creatorID uint, req api.CreateTestRequest) (*model.Test, error) {
	difficulty := model.Difficulty(req.Difficulty)
	switch difficulty {
	case "":
		difficulty = model.DifficultyBeginner
	case model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced:
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %q", util.ErrInvalidTest, req.Difficulty)
	}
	if req.TimeLimit < 0 {
		return nil, fmt.Errorf("%w: negative time limit", util.ErrInvalidTest)
	}

	test := &model.Test{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  difficulty,
		TimeLimit:   req.TimeLimit,
		IsActive:    true,
		CreatedBy:   &creatorID,
	}

	for i, in := range req.Questions {
		qType := model.QuestionType(in.QuestionType)
		switch qType {
		case "":
			qType = model.SingleChoice
		case model.SingleChoice, model.MultipleChoice:
		default:
			return nil, fmt.Errorf("%w: question %d has unknown type %q", util.ErrInvalidTest, i+1, in.QuestionType)
		}
		if len(in.Options) < 2 {
			return nil, fmt.Errorf("%w: question %d needs at least two options", util.ErrInvalidTest, i+1)
		}
		if len(in.CorrectAnswer) == 0 {
			return nil, fmt.Errorf("%w: question %d has no correct answer", util.ErrInvalidTest, i+1)
		}
		for _, idx := range in.CorrectAnswer {
			if idx < 0 || idx >= len(in.Options) {
				return nil, fmt.Errorf("%w: question %d answer %d is not an option", util.ErrInvalidTest, i+1, idx)
			}
		}
		if in.Points < 0 {
			return nil, fmt.Errorf("%w: question %d has negative points", util.ErrInvalidTest, i+1)
		}
		points := in.Points
		if points == 0 {
			points = 1
		}

		test.Questions = append(test.Questions, model.Question{
			Text:         in.QuestionText,
			Type:         qType,
			Options:      in.Options,
			CorrectIndex: []int(in.CorrectAnswer),
			Explanation:  in.Explanation,
			Points:       points,
		})
	}
	return test, nil
}

func (s *TrainingService) CreateTest(creatorID uint, req api.CreateTestRequest) (*model.Test, error) {
	test, err := BuildTest(creatorID, req)
	if err != nil {
		return nil, err
	}
	if err := s.TrainingRepo.CreateTest(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TrainingService) DeleteTest(id uint) error {
	err := s.TrainingRepo.DeleteTest(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrTestNotFound
	}
	return err
}
