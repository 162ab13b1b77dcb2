package repository

import (
	"errors"

	"phish_trainer/internal/model"

	"gorm.io/gorm"
)

type TrainingRepository struct {
	DB *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

// CreateTest inserts test together with its questions.
func (r *TrainingRepository) CreateTest(test *model.Test) error {
	return r.DB.Create(test).Error
}

// DeleteTest retires a test and its questions. Recorded results keep
// pointing at the soft-deleted row.
func (r *TrainingRepository) DeleteTest(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Test{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("test_id = ?", id).Delete(&model.Question{}).Error
	})
}

// FindActiveTest loads an active test with its questions in id order.
func (r *TrainingRepository) FindActiveTest(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("is_active = ?", true).
		First(&test, id).Error
	return &test, err
}

// ListForUser returns the active tests, newest first, with the user's progress.
func (r *TrainingRepository) ListForUser(userID uint) ([]model.TestSummary, error) {
	var tests []model.Test
	if err := r.DB.Where("is_active = ?", true).Order("created_at DESC, id DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return []model.TestSummary{}, nil
	}

	ids := make([]uint, len(tests))
	for i, t := range tests {
		ids[i] = t.ID
	}

	var counts []struct {
		TestID uint
		Count  int
	}
	if err := r.DB.Model(&model.Question{}).
		Select("test_id, COUNT(*) AS count").
		Where("test_id IN ?", ids).
		Group("test_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	questionCount := make(map[uint]int, len(counts))
	for _, c := range counts {
		questionCount[c.TestID] = c.Count
	}

	var progress []model.UserProgress
	if err := r.DB.Where("user_id = ? AND test_id IN ?", userID, ids).Find(&progress).Error; err != nil {
		return nil, err
	}
	byTest := make(map[uint]model.UserProgress, len(progress))
	for _, p := range progress {
		byTest[p.TestID] = p
	}

	summaries := make([]model.TestSummary, len(tests))
	for i, t := range tests {
		p, ok := byTest[t.ID]
		status := model.StatusNotStarted
		if ok {
			status = p.Status
		}
		summaries[i] = model.TestSummary{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Difficulty:    t.Difficulty,
			TimeLimit:     t.TimeLimit,
			QuestionCount: questionCount[t.ID],
			Status:        status,
			Score:         p.Score,
			Attempts:      p.Attempts,
		}
	}
	return summaries, nil
}

// SaveResult stores result and, in the same transaction, marks the test
// completed for the user, bumps the attempt and completion counters and
// recomputes the user's training progress over the active tests.
func (r *TrainingRepository) SaveResult(result *model.TestResult) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}

		var progress model.UserProgress
		err := tx.Where("user_id = ? AND test_id = ?", result.UserID, result.TestID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = model.UserProgress{UserID: result.UserID, TestID: result.TestID}
		} else if err != nil {
			return err
		}

		completedAt := result.CompletedAt
		progress.Status = model.StatusCompleted
		progress.Score = result.Score
		progress.Attempts++
		progress.CompletedAt = &completedAt
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		var active, completed int64
		if err := tx.Model(&model.Test{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.UserProgress{}).
			Joins("JOIN tests ON tests.id = user_progress.test_id AND tests.is_active = ? AND tests.deleted_at IS NULL", true).
			Where("user_progress.user_id = ? AND user_progress.status = ?", result.UserID, model.StatusCompleted).
			Count(&completed).Error; err != nil {
			return err
		}

		trainingProgress := 0
		if active > 0 {
			trainingProgress = int(completed * 100 / active)
		}

		return tx.Model(&model.User{}).
			Where("id = ?", result.UserID).
			Updates(map[string]interface{}{
				"tests_completed":   gorm.Expr("tests_completed + ?", 1),
				"training_progress": trainingProgress,
			}).Error
	})
}

type ResultTotals struct {
	Score    int64
	MaxScore int64
}

// Totals sums the scores of every result the user has.
func (r *TrainingRepository) Totals(userID uint) (ResultTotals, error) {
	var totals ResultTotals
	err := r.DB.Model(&model.TestResult{}).
		Select("COALESCE(SUM(score), 0) AS score, COALESCE(SUM(max_score), 0) AS max_score").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	return totals, err
}

// History returns the user's attempts, newest first. A limit of 0 or less
// returns all of them.
func (r *TrainingRepository) History(userID uint, limit int) ([]model.HistoryEntry, error) {
	query := r.DB.Where("user_id = ?", userID).Order("completed_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var results []model.TestResult
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}

	entries := make([]model.HistoryEntry, len(results))
	if len(results) == 0 {
		return entries, nil
	}

	ids := make([]uint, 0, len(results))
	for _, res := range results {
		ids = append(ids, res.TestID)
	}
	var tests []model.Test
	if err := r.DB.Unscoped().Where("id IN ?", ids).Find(&tests).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Test, len(tests))
	for _, t := range tests {
		byID[t.ID] = t
	}

	for i, res := range results {
		t := byID[res.TestID]
		percentage := 0
		if res.MaxScore > 0 {
			percentage = res.Score * 100 / res.MaxScore
		}
		entries[i] = model.HistoryEntry{
			ID:          res.ID,
			TestID:      res.TestID,
			Title:       t.Title,
			Difficulty:  t.Difficulty,
			Score:       res.Score,
			MaxScore:    res.MaxScore,
			Percentage:  percentage,
			TimeSpent:   res.TimeSpent,
			Answers:     res.Answers,
			CompletedAt: res.CompletedAt,
		}
	}
	return entries, nil
}
