package main

import (
	"log"
	"os"

	"github.com/docugen/docugen-api/internal/application/service"
	"github.com/docugen/docugen-api/internal/config"
	"github.com/docugen/docugen-api/internal/infrastructure/database"
	"github.com/docugen/docugen-api/internal/infrastructure/repository"
	"github.com/docugen/docugen-api/internal/presentation/http/handler"
	"github.com/docugen/docugen-api/internal/presentation/http/routes"
	"github.com/docugen/docugen-api/pkg/pdf"
	"github.com/docugen/docugen-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed document counters
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Admin.Secret, cfg.Admin.TokenExpiry)

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	codeRepo := repository.NewDownloadCodeRepository(db)
	counterRepo := repository.NewCounterRepository(db)

	// Initialize services
	authService := service.NewAuthService(cfg.Admin, jwtManager)
	settingsService := service.NewSettingsService(settingsRepo)
	codeService := service.NewCodeService(codeRepo, cfg.Codes)
	numberingService := service.NewNumberingService(counterRepo)
	documentService := service.NewDocumentService(
		settingsService,
		numberingService,
		codeService,
		pdf.NewRenderer(pdf.CleanStyle()),
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Settings: handler.NewSettingsHandler(settingsService),
		Code:     handler.NewCodeHandler(codeService),
		Document: handler.NewDocumentHandler(documentService, numberingService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
