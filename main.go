// @title Phishing Trainer API
// @version 1.0
// @description Backend of the phishing awareness trainer dashboard.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"phish_trainer/internal/app"
	"phish_trainer/internal/config"
	"phish_trainer/pkg/database"
	"phish_trainer/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	migrateOnly := flag.Bool("migrate-only", false, "migrate and seed the database, then exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	if cfg.MigrateOnly {
		logger.InitLogger(cfg)
		if _, err := database.InitDB(cfg); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed, exiting")
		return
	}

	application := app.NewApp(cfg)
	application.ConfigDir = *configDir
	defer logger.Log.Sync()

	application.Run()
}
