package main

import (
	"keijiban/internal/app"
	"keijiban/pkg/cache"
	"keijiban/pkg/config"
	"keijiban/pkg/database"
	"keijiban/pkg/logger"

	_ "keijiban/docs" // Swagger docs
)

// @title           Keijiban API
// @version         1.0
// @description     Japanese bulletin board service: posts, likes, search and sorting.

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
