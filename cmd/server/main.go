package main

import (
	"os"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/config"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/handlers"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/middleware"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/services"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/utils"
	"github.com/Jeffrey-enterN/entern-ghosted/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	// Initialize JWT secret
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	// Initialize system logger and start retention cleanup
	services.InitSystemLogger(db)
	services.StartLogCleanupScheduler(db, cfg.Log.RetentionDays)

	// Build services. The company service must be a single instance so
	// find-or-create stays serialized through one critical section.
	companyService := services.NewCompanyService(db)
	reportService := services.NewReportService(db)
	statsService := services.NewStatsService(db, companyService, reportService)
	authService := services.NewAuthService(db, &cfg.JWT)
	systemLogService := services.NewSystemLogService(db)

	// Create default admin user
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	if err := authService.CreateAdminIfNotExists("admin", adminPassword); err != nil {
		logger.Warnf("Failed to create admin user: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Create router
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS())

	// Health check endpoint
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	companyHandler := handlers.NewCompanyHandler(companyService, statsService)
	reportHandler := handlers.NewReportHandler(reportService, companyService)
	reporterHandler := handlers.NewReporterHandler()
	authHandler := handlers.NewAuthHandler(authService)
	systemLogHandler := handlers.NewSystemLogHandler(systemLogService, cfg.Log.RetentionDays)

	// API routes
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	{
		// Public extension-facing routes
		api.POST("/reports", reportHandler.Create)
		api.GET("/reports", reportHandler.ListBySubmitter)

		api.POST("/companies", companyHandler.Create)
		api.GET("/companies/stats", companyHandler.GetStatsByName)
		api.GET("/companies/stats/url", companyHandler.GetStatsByURL)
		api.GET("/companies/search", companyHandler.Search)
		api.GET("/companies/top", companyHandler.Top)
		api.GET("/companies/:id", companyHandler.GetByID)

		api.POST("/reporters", reporterHandler.New)

		// Auth routes (public)
		api.POST("/auth/login", authHandler.Login)

		// Protected admin routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			protected.GET("/auth/me", authHandler.GetCurrentUser)

			admin := protected.Group("")
			admin.Use(middleware.AdminRequired())
			{
				admin.GET("/system-logs", systemLogHandler.List)
				admin.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
			}
		}
	}

	// Start server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
