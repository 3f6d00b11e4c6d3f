package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucasraugi/presentes-api/internal/config"
	"github.com/lucasraugi/presentes-api/internal/logger"
	"github.com/lucasraugi/presentes-api/internal/storage"
	"github.com/lucasraugi/presentes-api/internal/storage/database"
	"github.com/lucasraugi/presentes-api/internal/storage/migrations"
)

func main() {
	cfg := config.Load()

	logger.Initialize("info")
	log := logger.Migration()

	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	log.Info("Starting migration process", "rollback", *rollback, "driver", cfg.DB.Driver)

	dialector, err := storage.Dialector(cfg)
	if err != nil {
		log.Error("Invalid storage configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(dialector, cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if *rollback {
		log.Info("Rolling back migrations...")
		if err := migrations.RollbackMigration(db); err != nil {
			log.Error("Migration rollback failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migration rollback completed successfully")
	} else {
		log.Info("Running migrations...")
		if err := migrations.RunMigrations(db); err != nil {
			log.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("Migrations completed successfully")
	}

	fmt.Println("Migration process completed!")
}
