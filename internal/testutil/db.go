// Package testutil builds the fixtures shared by the server tests.
package testutil

import (
	"testing"
	"time"

	"phish_trainer/internal/config"
	"phish_trainer/internal/model"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/database"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database seeded with the admin
// account and the sample test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard, TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db, config.SeedConfig{AdminPassword: "admin123", SampleTest: true}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// CreateUser inserts an active test subject whose password is password.
func CreateUser(t *testing.T, db *gorm.DB, username, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.User{
		Username:      username,
		Email:         username + "@example.com",
		Password:      string(hash),
		Role:          model.TestSubject,
		SecurityLevel: api.LevelBeginner,
		IsActive:      true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// Config is a minimal valid configuration for handler tests.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.Locale = "en"
	cfg.Database.Driver = config.DriverSQLite
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.JWT.CookieName = "session"
	cfg.RateLimit = config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1, LoginMaxRequests: 1000}
	cfg.Seed = config.SeedConfig{AdminPassword: "admin123", SampleTest: true}
	return cfg
}
