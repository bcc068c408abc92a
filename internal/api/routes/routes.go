package routes

import (
	"tvar-backend/internal/api/handlers"
	"tvar-backend/internal/api/middleware"
	"tvar-backend/internal/config"
	"tvar-backend/internal/repository"
	"tvar-backend/internal/services"
	"tvar-backend/pkg/cache"
	"tvar-backend/pkg/jwt"
	"tvar-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies bundles everything the HTTP layer needs.
type Dependencies struct {
	DB          *mongo.Database
	RedisClient *redis.Client
	Config      *config.Config
}

// SetupRoutes wires repositories, services and handlers onto the router.
// It returns the alert service so the notifier can reuse it.
func SetupRoutes(router *gin.Engine, deps Dependencies) *services.AlertService {
	// Initialize repositories
	truckRepo := repository.NewTruckRepository(deps.DB)
	driverRepo := repository.NewDriverRepository(deps.DB)
	documentRepo := repository.NewDocumentRepository(deps.DB)
	repairRepo := repository.NewRepairRepository(deps.DB)
	fuelRepo := repository.NewFuelRepository(deps.DB)
	adBlueRepo := repository.NewAdBlueRepository(deps.DB)
	oilRepo := repository.NewOilChangeRepository(deps.DB)
	operationRepo := repository.NewOperationRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	notificationRepo := repository.NewNotificationRepository(deps.DB)

	// Initialize services
	var snapshotCache *cache.SnapshotCache
	if deps.RedisClient != nil {
		snapshotCache = cache.NewSnapshotCache(deps.RedisClient.GetClient(), cache.DefaultSnapshotCacheConfig())
	}
	snapshotService := services.NewSnapshotService(truckRepo, driverRepo, documentRepo, repairRepo, fuelRepo, oilRepo, operationRepo, snapshotCache)
	alertService := services.NewAlertService(snapshotService)

	jwtUtil := jwt.NewJWTUtil(deps.Config.JWTSecret, deps.Config.JWTExpiry)
	authService := services.NewAuthService(userRepo, jwtUtil)
	userService := services.NewUserService(userRepo)
	truckService := services.NewTruckService(truckRepo, snapshotService)
	driverService := services.NewDriverService(driverRepo, truckRepo, snapshotService)
	documentService := services.NewDocumentService(documentRepo, truckRepo, snapshotService)
	repairService := services.NewRepairService(repairRepo, truckRepo, snapshotService)
	fuelService := services.NewFuelService(fuelRepo, adBlueRepo, truckRepo, snapshotService)
	oilService := services.NewOilChangeService(oilRepo, truckRepo, snapshotService)
	operationService := services.NewOperationService(operationRepo, truckRepo, snapshotService)
	reportService := services.NewReportService(truckRepo, driverRepo, operationRepo, repairRepo, fuelRepo, adBlueRepo, oilRepo, alertService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	truckHandler := handlers.NewTruckHandler(truckService)
	driverHandler := handlers.NewDriverHandler(driverService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	repairHandler := handlers.NewRepairHandler(repairService)
	fuelHandler := handlers.NewFuelHandler(fuelService)
	oilHandler := handlers.NewOilChangeHandler(oilService)
	operationHandler := handlers.NewOperationHandler(operationService)
	alertHandler := handlers.NewAlertHandler(alertService, notificationRepo)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(deps.RedisClient)

	// API routes
	api := router.Group("/api/v1")

	api.GET("/health", healthHandler.Health)

	// Public routes
	auth := api.Group("/auth")
	{
		login := authHandler.Login
		if deps.RedisClient != nil {
			limiter := middleware.NewLoginRateLimiter(deps.RedisClient.GetClient(), 10, 0)
			auth.POST("/login", limiter.Middleware(), login)
		} else {
			auth.POST("/login", login)
		}
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtUtil))
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.POST("/auth/refresh", authHandler.RefreshToken)

		admin := middleware.RequireAdmin()

		// Trucks
		trucks := protected.Group("/trucks")
		{
			trucks.GET("", truckHandler.GetTrucks)
			trucks.GET("/:id", truckHandler.GetTruck)
			trucks.POST("", admin, truckHandler.CreateTruck)
			trucks.PUT("/:id", admin, truckHandler.UpdateTruck)
			trucks.DELETE("/:id", admin, truckHandler.DeleteTruck)
		}

		// Drivers
		drivers := protected.Group("/drivers")
		{
			drivers.GET("", driverHandler.GetDrivers)
			drivers.GET("/:id", driverHandler.GetDriver)
			drivers.POST("", admin, driverHandler.CreateDriver)
			drivers.PUT("/:id", admin, driverHandler.UpdateDriver)
			drivers.DELETE("/:id", admin, driverHandler.DeleteDriver)
		}

		// Truck documents
		documents := protected.Group("/documents")
		{
			documents.GET("", documentHandler.GetDocuments)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.POST("", admin, documentHandler.CreateDocument)
			documents.PUT("/:id", admin, documentHandler.UpdateDocument)
			documents.DELETE("/:id", admin, documentHandler.DeleteDocument)
		}

		// Repairs
		repairs := protected.Group("/repairs")
		{
			repairs.GET("", repairHandler.GetRepairs)
			repairs.GET("/:id", repairHandler.GetRepair)
			repairs.POST("", admin, repairHandler.CreateRepair)
			repairs.PUT("/:id", admin, repairHandler.UpdateRepair)
			repairs.DELETE("/:id", admin, repairHandler.DeleteRepair)
		}

		// Fuel and AdBlue
		fuel := protected.Group("/fuel")
		{
			fuel.GET("", fuelHandler.GetFuelEntries)
			fuel.POST("", admin, fuelHandler.CreateFuelEntry)
			fuel.DELETE("/:id", admin, fuelHandler.DeleteFuelEntry)
		}
		adblue := protected.Group("/adblue")
		{
			adblue.GET("", fuelHandler.GetAdBlueEntries)
			adblue.POST("", admin, fuelHandler.CreateAdBlueEntry)
			adblue.DELETE("/:id", admin, fuelHandler.DeleteAdBlueEntry)
		}

		// Oil changes
		oil := protected.Group("/oil-changes")
		{
			oil.GET("", oilHandler.GetOilChanges)
			oil.GET("/:id", oilHandler.GetOilChange)
			oil.POST("", admin, oilHandler.CreateOilChange)
			oil.DELETE("/:id", admin, oilHandler.DeleteOilChange)
		}

		// Operations
		operations := protected.Group("/operations")
		{
			operations.GET("", operationHandler.GetOperations)
			operations.GET("/:id", operationHandler.GetOperation)
			operations.POST("", admin, operationHandler.CreateOperation)
			operations.PUT("/:id", admin, operationHandler.UpdateOperation)
			operations.DELETE("/:id", admin, operationHandler.DeleteOperation)
		}

		// Alerts
		alerts := protected.Group("/alerts")
		{
			alerts.GET("", alertHandler.GetAlerts)
			alerts.GET("/statistics", alertHandler.GetAlertStatistics)
			alerts.GET("/notifications", alertHandler.GetNotifications)
		}

		// Reports
		reports := protected.Group("/reports")
		{
			reports.GET("/dashboard", reportHandler.GetDashboardStats)
			reports.GET("/maintenance-costs", reportHandler.GetMaintenanceCosts)
			reports.GET("/operations", reportHandler.GetOperationSummary)
		}

		// Users (admin only)
		users := protected.Group("/users", admin)
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.PUT("/:id/password", userHandler.ChangePassword)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return alertService
}
