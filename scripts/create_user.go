// Creates an account directly in the database, for example the first
// organizer of a fresh deployment.
//
// Usage: go run scripts/create_user.go -username org -email org@example.com -password secret -role user

package main

import (
	"flag"
	"log"

	"phish_trainer/internal/config"
	"phish_trainer/internal/repository"
	"phish_trainer/internal/service"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/database"
	"phish_trainer/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	var req api.CreateUserRequest
	flag.StringVar(&req.Username, "username", "", "username")
	flag.StringVar(&req.Email, "email", "", "e-mail address")
	flag.StringVar(&req.Password, "password", "", "password")
	flag.StringVar(&req.FullName, "full-name", "", "full name")
	flag.StringVar(&req.Role, "role", "test_subject", "admin, user or test_subject")
	flag.StringVar(&req.Organization, "organization", "", "organization")
	flag.Parse()

	if req.Username == "" || req.Email == "" || req.Password == "" {
		flag.Usage()
		log.Fatal("username, email and password are required")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	user, err := users.CreateUser(nil, req)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	logger.Log.Info("User created", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	log.Printf("Created %s (%s)", user.Username, user.Role)
}
