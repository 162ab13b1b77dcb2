package service

import (
	"errors"
	"time"

	"phish_trainer/internal/config"
	"phish_trainer/internal/model"
	"phish_trainer/internal/repository"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Login checks the credentials and returns a signed session token.
// Unknown users and wrong passwords both yield util.ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		logger.Log.Warn("Failed to record last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
