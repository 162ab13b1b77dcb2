package service

import (
	"errors"

	"phish_trainer/internal/model"
	"phish_trainer/internal/repository"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/api"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func parseRole(role string) (model.UserRole, error) {
	switch r := model.UserRole(role); r {
	case "":
		return model.TestSubject, nil
	case model.Admin, model.Organizer, model.TestSubject:
		return r, nil
	default:
		return "", util.ErrInvalidRole
	}
}

// CreateUserAs creates an account on behalf of the user creatorID.
func (s *UserService) CreateUserAs(creatorID uint, req api.CreateUserRequest) (*model.User, error) {
	creator, err := s.UserRepo.FindByID(creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return s.CreateUser(creator, req)
}

// CreateUser creates an account. Organizers may only create test subjects,
// who join the organizer's organization. A nil creator is the operator
// running the CLI and may create any role.
func (s *UserService) CreateUser(creator *model.User, req api.CreateUserRequest) (*model.User, error) {
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}

	organization := req.Organization
	if creator != nil && creator.Role == model.Organizer {
		if role != model.TestSubject {
			return nil, util.ErrRoleNotAllowed
		}
		organization = creator.Organization
	}

	exists, err := s.UserRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrUsernameTaken
	}
	taken, err := s.UserRepo.EmailUsedByOther(req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      string(hash),
		FullName:      req.FullName,
		Role:          role,
		SecurityLevel: api.LevelBeginner,
		Organization:  organization,
		IsActive:      true,
	}
	if creator != nil {
		user.CreatedBy = &creator.ID
	}

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateCause(req.Username)
		}
		return nil, err
	}
	return user, nil
}

// duplicateCause tells which unique column a concurrent insert won on.
func (s *UserService) duplicateCause(username string) error {
	if exists, err := s.UserRepo.UsernameExists(username); err == nil && exists {
		return util.ErrUsernameTaken
	}
	return util.ErrEmailTaken
}

func (s *UserService) findActor(id uint) (*model.User, error) {
	actor, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return actor, nil
}

// ListUsers returns the accounts viewerID manages: every other active
// account for an admin, the test subjects they created for an organizer.
func (s *UserService) ListUsers(viewerID uint) ([]model.UserSummary, error) {
	viewer, err := s.findActor(viewerID)
	if err != nil {
		return nil, err
	}
	switch viewer.Role {
	case model.Admin:
		return s.UserRepo.ListAll(viewer.ID)
	case model.Organizer:
		return s.UserRepo.ListCreatedSubjects(viewer.ID)
	default:
		return nil, util.ErrRoleNotAllowed
	}
}

func (s *UserService) OrganizationUsers(organization string) ([]model.UserSummary, error) {
	return s.UserRepo.ListOrganizationSubjects(organization)
}

// DeleteUserAs removes targetID on behalf of actorID. Nobody deletes their
// own account; organizers delete only test subjects they created.
func (s *UserService) DeleteUserAs(actorID, targetID uint) error {
	if actorID == targetID {
		return util.ErrSelfDelete
	}
	actor, err := s.findActor(actorID)
	if err != nil {
		return err
	}

	target, err := s.UserRepo.FindAnyByID(targetID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if actor.Role != model.Admin {
			return util.ErrDeleteNotAllowed
		}
		return util.ErrTargetUserNotFound
	case err != nil:
		return err
	}

	switch actor.Role {
	case model.Admin:
	case model.Organizer:
		if target.Role != model.TestSubject || target.CreatedBy == nil || *target.CreatedBy != actor.ID {
			return util.ErrDeleteNotAllowed
		}
	default:
		return util.ErrDeleteNotAllowed
	}

	if err := s.UserRepo.Delete(target.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTargetUserNotFound
		}
		return err
	}
	return nil
}
