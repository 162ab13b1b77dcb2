package repository

import (
	"time"

	"phish_trainer/internal/model"
	"phish_trainer/pkg/api"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

// FindByID returns active users only.
func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Where("is_active = ?", true).First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	return &user, err
}

// EmailUsedByOther reports whether another account already owns email.
func (r *UserRepository) EmailUsedByOther(email string, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UpdateProfile(userID uint, fullName, email string, level api.SecurityLevel) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"full_name":      fullName,
			"email":          email,
			"security_level": level,
		}).Error
}

func (r *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", passwordHash).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", at).Error
}

const userSummaryColumns = "users.id, users.username, users.email, users.full_name, users.role, " +
	"users.organization, users.security_level, users.training_progress, users.tests_completed, " +
	"COALESCE(creator.username, '') AS created_by_name, users.created_at AS registered_at, users.last_login"

func (r *UserRepository) summaries() *gorm.DB {
	return r.DB.Model(&model.User{}).
		Select(userSummaryColumns).
		Joins("LEFT JOIN users creator ON creator.id = users.created_by").
		Where("users.is_active = ?", true)
}

// ListAll returns every active account except the viewer's own.
func (r *UserRepository) ListAll(exceptID uint) ([]model.UserSummary, error) {
	users := []model.UserSummary{}
	err := r.summaries().
		Where("users.id <> ?", exceptID).
		Order("users.role, users.username").
		Scan(&users).Error
	return users, err
}

// ListCreatedSubjects returns the active test subjects creatorID created.
func (r *UserRepository) ListCreatedSubjects(creatorID uint) ([]model.UserSummary, error) {
	users := []model.UserSummary{}
	err := r.summaries().
		Where("users.created_by = ? AND users.role = ?", creatorID, model.TestSubject).
		Order("users.username").
		Scan(&users).Error
	return users, err
}

// ListOrganizationSubjects returns the active test subjects of organization.
func (r *UserRepository) ListOrganizationSubjects(organization string) ([]model.UserSummary, error) {
	users := []model.UserSummary{}
	err := r.summaries().
		Where("users.organization = ? AND users.role = ?", organization, model.TestSubject).
		Order("users.username").
		Scan(&users).Error
	return users, err
}

// FindAnyByID looks a user up regardless of the active flag.
func (r *UserRepository) FindAnyByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// Delete removes the account with its results and progress. The row is
// removed for good so the username and e-mail can be reused.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&model.TestResult{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&model.UserProgress{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
