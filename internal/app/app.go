package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bakraHTTP "bakra-mandi/internal/controller/http"
	"bakra-mandi/internal/repo/persistent"
	"bakra-mandi/internal/usecase"
	"bakra-mandi/pkg/config"
	"bakra-mandi/pkg/devicetoken"
	"bakra-mandi/pkg/logger"
	"bakra-mandi/pkg/middleware"
	"bakra-mandi/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "bakra-mandi/internal/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	tokenService := devicetoken.NewService(cfg.DeviceTokenSecret)

	// Initialize repositories
	videoRepo := persistent.NewVideoRepository(db)
	engagementRepo := persistent.NewEngagementRepository(db)
	goatRepo := persistent.NewGoatRepository(db)
	contactRepo := persistent.NewContactRepository(db)

	// Initialize use cases
	feedUseCase := usecase.NewFeedUseCase(videoRepo, log)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, redisClient, queueClient, log)
	catalogUseCase := usecase.NewCatalogUseCase(goatRepo, log)
	contactUseCase := usecase.NewContactUseCase(contactRepo, queueClient, log)

	// Initialize HTTP handlers
	videoHandler := bakraHTTP.NewVideoHandler(feedUseCase, engagementUseCase, log)
	goatHandler := bakraHTTP.NewGoatHandler(catalogUseCase, log)
	contactHandler := bakraHTTP.NewContactHandler(contactUseCase, log)
	deviceHandler := bakraHTTP.NewDeviceHandler(tokenService, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin, "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.DeviceMiddleware())
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/videos", videoHandler.ListVideos)
		api.POST("/videos/:id/like", videoHandler.ToggleLike)
		api.GET("/videos/:id/like", videoHandler.LikeStatus)
		api.GET("/videos/:id/likes", videoHandler.GetLikeCount)

		api.GET("/goats", goatHandler.ListGoats)
		api.GET("/goats/:id/images", goatHandler.GoatImages)

		api.POST("/contact", contactHandler.SubmitMessage)
		api.POST("/device-tokens", deviceHandler.MintToken)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Storefront API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down storefront API...")

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection if it was initialized
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Storefront API exited")
}
