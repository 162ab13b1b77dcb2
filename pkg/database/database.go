package database

import (
	"errors"
	"fmt"
	"log"

	"phish_trainer/internal/config"
	"phish_trainer/internal/model"
	"phish_trainer/pkg/api"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for cfg.Driver.
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		// foreign keys are off by default in sqlite
		return sqlite.Open(cfg.Path + "?_pragma=foreign_keys(1)"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(&cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey on
	// both drivers.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db, cfg.Seed); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Test{},
		&model.Question{},
		&model.TestResult{},
		&model.UserProgress{},
	)
}

// Seed creates the admin account and, when enabled, the sample test. It is
// safe to run on every start.
func Seed(db *gorm.DB, cfg config.SeedConfig) error {
	var admin model.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = model.User{
			Username:      "admin",
			Email:         "admin@phishing-trainer.com",
			Password:      string(hash),
			FullName:      "System Administrator",
			Role:          model.Admin,
			SecurityLevel: api.LevelExpert,
			Organization:  "System",
			IsActive:      true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if !cfg.SampleTest {
		return nil
	}

	var count int64
	db.Model(&model.Test{}).Count(&count)
	if count > 0 {
		return nil
	}

	return db.Create(sampleTest(admin.ID)).Error
}

func sampleTest(createdBy uint) *model.Test {
	return &model.Test{
		Title:       "Phishing recognition basics",
		Description: "Entry-level test on spotting phishing e-mails",
		Difficulty:  model.DifficultyBeginner,
		IsActive:    true,
		CreatedBy:   &createdBy,
		Questions: []model.Question{
			{
				Text: "Which of these signs can point to a phishing e-mail?",
				Type: model.MultipleChoice,
				Options: []string{
					"Typos in the sender's domain name",
					"Urgent demands for immediate action",
					"A request for confidential information",
					"The company's official logo",
				},
				CorrectIndex: []int{0, 1, 2},
				Explanation:  "Phishing mail often misspells domains, creates urgency and asks for confidential data.",
				Points:       2,
			},
			{
				Text: "Your bank e-mails you a link to my-bank-security.com. What should you do?",
				Type: model.SingleChoice,
				Options: []string{
					"Follow the link and enter your details",
					"Call the bank on its official number",
					"Ignore the e-mail",
					"Forward the e-mail to a friend",
				},
				CorrectIndex: []int{1},
				Explanation:  "Always confirm through the bank's official number. Domains with extra words are often phishing.",
				Points:       1,
			},
			{
				Text: `A "support team" e-mail carries an attachment named "Security_update.exe". What do you do?`,
				Type: model.SingleChoice,
				Options: []string{
					"Open it, security matters",
					"Delete the e-mail without opening the attachment",
					"Forward it to the IT department",
					"Save the attachment to disk",
				},
				CorrectIndex: []int{1},
				Explanation:  "Executables attached to mail from unknown senders are a classic malware delivery trick.",
				Points:       1,
			},
		},
	}
}
