package model

import (
	"time"

	"phish_trainer/pkg/api"
)

type UserRole string

const (
	Admin       UserRole = "admin"
	Organizer   UserRole = "user"
	TestSubject UserRole = "test_subject"
)

// swagger:model User
type User struct {
	BaseModel
	Username         string            `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email            string            `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password         string            `gorm:"size:255;not null" json:"-"`
	FullName         string            `gorm:"size:100" json:"fullName"`
	Role             UserRole          `gorm:"size:20;not null;default:'test_subject'" json:"role"`
	SecurityLevel    api.SecurityLevel `gorm:"size:20;default:'beginner'" json:"securityLevel"`
	TrainingProgress int               `gorm:"default:0" json:"trainingProgress"`
	TestsCompleted   int               `gorm:"default:0" json:"testsCompleted"`
	Organization     string            `gorm:"size:100" json:"organization"`
	CreatedBy        *uint             `json:"createdBy,omitempty"`
	LastLogin        *time.Time        `json:"lastLogin,omitempty"`
	IsActive         bool              `gorm:"default:true" json:"isActive"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName is the name used in the dashboard greeting.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// UserSummary is an account as shown to the people who manage it.
type UserSummary struct {
	ID               uint              `json:"id"`
	Username         string            `json:"username"`
	Email            string            `json:"email"`
	FullName         string            `json:"fullName"`
	Role             UserRole          `json:"role"`
	Organization     string            `json:"organization"`
	SecurityLevel    api.SecurityLevel `json:"securityLevel"`
	TrainingProgress int               `json:"trainingProgress"`
	TestsCompleted   int               `json:"testsCompleted"`
	CreatedByName    string            `json:"createdByName,omitempty"`
	RegisteredAt     time.Time         `json:"registeredAt"`
	LastLogin        *time.Time        `json:"lastLogin,omitempty"`
}
