package main

import (
	"log"

	"tvar-backend/internal/api/routes"
	"tvar-backend/internal/config"
	"tvar-backend/internal/repository"
	"tvar-backend/pkg/database"
	"tvar-backend/pkg/email"
	"tvar-backend/pkg/notifier"
	"tvar-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	client, db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Disconnect(client)

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	userRepo := repository.NewUserRepository(db)
	if err := database.SeedUsers(userRepo); err != nil {
		log.Fatal("Failed to seed default users:", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(cfg.Redis)
	defer redisClient.Close()

	healthStatus := redisClient.HealthCheck()
	if healthStatus.IsConnected {
		log.Printf("Redis connected successfully at %s", healthStatus.ConnectionInfo)
	} else {
		log.Printf("Redis connection failed: %s (will retry automatically)", healthStatus.Error)
	}

	// Setup Gin router
	router := gin.Default()

	// CORS middleware
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))

	// Setup routes
	alertService := routes.SetupRoutes(router, routes.Dependencies{
		DB:          db,
		RedisClient: redisClient,
		Config:      cfg,
	})

	// Background alert notifier
	notifierConfig := notifier.DefaultConfig()
	notifierConfig.Interval = cfg.AlertCheckInterval
	alertNotifier := notifier.NewService(
		alertService,
		redisClient.GetClient(),
		repository.NewNotificationRepository(db),
		email.NewAlertMailer(cfg.SMTP),
		notifierConfig,
	)
	alertNotifier.Start()
	defer alertNotifier.Stop()

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
