// Package api holds the JSON contract shared by the trainer server and the
// dashboard clients.
package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Endpoint paths consumed by the dashboard.
const (
	PathUserStats      = "/get_user_stats"
	PathUpdateProfile  = "/update_profile"
	PathChangePassword = "/change_password"
	PathLogin          = "/login"
	PathLogout         = "/logout"
	PathTests          = "/tests"
	PathTestResults    = "/test_results"
	PathCreateUser     = "/create_user"
	PathUsers          = "/users"
	PathCreateTest     = "/create_test"
)

type SecurityLevel string

const (
	LevelBeginner     SecurityLevel = "beginner"
	LevelIntermediate SecurityLevel = "intermediate"
	LevelAdvanced     SecurityLevel = "advanced"
	LevelExpert       SecurityLevel = "expert"
)

// SecurityLevels lists the accepted values of ProfileUpdateRequest.SecurityLevel.
var SecurityLevels = []SecurityLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

func (l SecurityLevel) Valid() bool {
	for _, v := range SecurityLevels {
		if v == l {
			return true
		}
	}
	return false
}

// UserStats is the server-computed progress shown on the dashboard.
type UserStats struct {
	TrainingProgress int    `json:"training_progress"`
	TestsCompleted   int    `json:"tests_completed"`
	SuccessRate      int    `json:"success_rate"`
	Rank             string `json:"rank"`
}

// Response is the envelope returned by every endpoint. Success is the only
// branching signal; Stats is set by /get_user_stats only.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Stats   *UserStats `json:"stats,omitempty"`
	Token   string     `json:"token,omitempty"`
}

// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	FullName      string        `json:"full_name"`
	Email         string        `json:"email" binding:"required,email"`
	SecurityLevel SecurityLevel `json:"security_level" binding:"required,oneof=beginner intermediate advanced expert"`
}

// swagger:model PasswordChangeRequest
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Username     string `json:"username" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Answer is a set of chosen option indexes. It decodes from a single index
// or from a list of them; indexes may be numbers or numeric strings, which is
// what HTML radio and checkbox inputs submit.
type Answer []int

func (a *Answer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var many []json.RawMessage
	if err := json.Unmarshal(data, &many); err != nil {
		idx, err := parseIndex(data)
		if err != nil {
			return err
		}
		*a = Answer{idx}
		return nil
	}

	out := make(Answer, 0, len(many))
	for _, raw := range many {
		idx, err := parseIndex(raw)
		if err != nil {
			return err
		}
		out = append(out, idx)
	}
	*a = out
	return nil
}

func parseIndex(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("answer must be an option index or a list of them: %s", raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("answer %q is not an option index", s)
	}
	return n, nil
}

// swagger:model TestSubmission
type TestSubmission struct {
	// Answers is keyed by question id.
	Answers   map[string]Answer `json:"answers"`
	TimeSpent int               `json:"time_spent"`
}

// SubmitResponse is the envelope of a graded test.
type SubmitResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"max_score"`
	Percentage int    `json:"percentage"`
}

// swagger:model QuestionInput
type QuestionInput struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options"`
	CorrectAnswer Answer   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
}

// swagger:model CreateTestRequest
type CreateTestRequest struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Description string          `json:"description"`
	Difficulty  string          `json:"difficulty"`
	TimeLimit   int             `json:"time_limit" binding:"min=0"`
	Questions   []QuestionInput `json:"questions" binding:"dive"`
}

// CreateTestResponse carries the id of the new test.
type CreateTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	TestID  uint   `json:"test_id"`
}
