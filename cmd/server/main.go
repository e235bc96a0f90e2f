package main

import (
	"bakra-mandi/internal/app"
	"bakra-mandi/pkg/cache"
	"bakra-mandi/pkg/config"
	"bakra-mandi/pkg/database"
	"bakra-mandi/pkg/logger"
	"bakra-mandi/pkg/queue"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Bakra Mandi Storefront API
// @version         1.0
// @description     Goat catalog, contact form and reel feed with per-device likes

// @host      localhost:8080
// @BasePath  /api/v1

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

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	// Connect to RabbitMQ for publishing farm alerts
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil // Allow the storefront to run without RabbitMQ
	}

	app.Run(cfg, log, db, redisClient, queueClient)
}
