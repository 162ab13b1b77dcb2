package model

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type QuestionType string

const (
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
)

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusCompleted  ProgressStatus = "completed"
)

// swagger:model Test
type Test struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Difficulty  Difficulty `gorm:"size:20;default:'beginner'" json:"difficulty"`
	// TimeLimit is in minutes; 0 means unlimited.
	TimeLimit int        `gorm:"default:0" json:"timeLimit"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
	CreatedBy *uint      `json:"createdBy,omitempty"`
	Questions []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// swagger:model Question
type Question struct {
	BaseModel
	TestID       uint         `gorm:"index;not null" json:"testId"`
	Text         string       `gorm:"type:text;not null" json:"questionText"`
	Type         QuestionType `gorm:"size:20;default:'single_choice'" json:"questionType"`
	Options      []string     `gorm:"serializer:json;type:text;not null" json:"options"`
	CorrectIndex []int        `gorm:"serializer:json;type:text;not null" json:"-"`
	Explanation  string       `gorm:"type:text" json:"explanation"`
	Points       int          `gorm:"default:1" json:"points"`
}

func (Question) TableName() string {
	return "questions"
}

// AnswerDetail is the graded answer to one question, stored with the result.
type AnswerDetail struct {
	UserAnswer    []int  `json:"user_answer"`
	Correct       bool   `json:"correct"`
	CorrectAnswer []int  `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// swagger:model TestResult
type TestResult struct {
	BaseModel
	UserID      uint                    `gorm:"index;not null" json:"userId"`
	TestID      uint                    `gorm:"index;not null" json:"testId"`
	Score       int                     `gorm:"not null" json:"score"`
	MaxScore    int                     `gorm:"not null" json:"maxScore"`
	TimeSpent   int                     `gorm:"not null" json:"timeSpent"`
	Answers     map[string]AnswerDetail `gorm:"serializer:json;type:text" json:"answers"`
	CompletedAt time.Time               `json:"completedAt"`
}

func (TestResult) TableName() string {
	return "test_results"
}

// UserProgress is one row per (user, test) pair.
type UserProgress struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex:idx_progress_user_test;not null" json:"userId"`
	TestID      uint           `gorm:"uniqueIndex:idx_progress_user_test;not null" json:"testId"`
	Status      ProgressStatus `gorm:"size:20;default:'not_started'" json:"status"`
	Score       int            `gorm:"default:0" json:"score"`
	Attempts    int            `gorm:"default:0" json:"attempts"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// TestSummary is a test as listed for one user.
type TestSummary struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Difficulty    Difficulty     `json:"difficulty"`
	TimeLimit     int            `json:"timeLimit"`
	QuestionCount int            `json:"questionCount"`
	Status        ProgressStatus `json:"status"`
	Score         int            `json:"score"`
	Attempts      int            `json:"attempts"`
}

// HistoryEntry is one recorded attempt with the test it belongs to. Tests
// deleted since the attempt keep their title here.
type HistoryEntry struct {
	ID          uint                    `json:"id"`
	TestID      uint                    `json:"testId"`
	Title       string                  `json:"title"`
	Difficulty  Difficulty              `json:"difficulty"`
	Score       int                     `json:"score"`
	MaxScore    int                     `json:"maxScore"`
	Percentage  int                     `json:"percentage"`
	TimeSpent   int                     `json:"timeSpent"`
	Answers     map[string]AnswerDetail `json:"answers"`
	CompletedAt time.Time               `json:"completedAt"`
}
