package service

import (
	"errors"

	"phish_trainer/internal/repository"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService struct {
	UserRepo *repository.UserRepository
}

func NewProfileService(userRepo *repository.UserRepository) *ProfileService {
	return &ProfileService{UserRepo: userRepo}
}

func (s *ProfileService) UpdateProfile(userID uint, req api.ProfileUpdateRequest) error {
	if !req.SecurityLevel.Valid() {
		return util.ErrInvalidSecurityLevel
	}

	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	taken, err := s.UserRepo.EmailUsedByOther(req.Email, userID)
	if err != nil {
		return err
	}
	if taken {
		return util.ErrEmailTaken
	}

	err = s.UserRepo.UpdateProfile(userID, req.FullName, req.Email, req.SecurityLevel)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrEmailTaken
	}
	return err
}

// ChangePassword replaces the password hash once current matches the
// stored one.
func (s *ProfileService) ChangePassword(userID uint, current, next string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return util.ErrCurrentPasswordWrong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(userID, string(hash))
}
