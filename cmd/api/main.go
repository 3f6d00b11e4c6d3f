package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasraugi/presentes-api/internal/auth"
	"github.com/lucasraugi/presentes-api/internal/config"
	"github.com/lucasraugi/presentes-api/internal/images"
	"github.com/lucasraugi/presentes-api/internal/logger"
	"github.com/lucasraugi/presentes-api/internal/server"
	"github.com/lucasraugi/presentes-api/internal/storage"
	"github.com/lucasraugi/presentes-api/internal/storage/database"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Log.Level)
	log := logger.Get()

	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatal("Failed to open storage", "error", err)
	}
	defer database.Close()

	imageStore, err := images.NewStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize image store", "error", err)
	}

	authManager, err := auth.NewManager(cfg.Admin.Password, cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)
	if err != nil {
		log.Fatal("Failed to initialize admin auth", "error", err)
	}

	srv := server.New(cfg, db, imageStore, authManager)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
}
