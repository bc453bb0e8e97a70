package routes

import (
	"time"

	"github.com/docugen/docugen-api/internal/config"
	"github.com/docugen/docugen-api/internal/presentation/http/handler"
	"github.com/docugen/docugen-api/internal/presentation/http/middleware"
	"github.com/docugen/docugen-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Settings *handler.SettingsHandler
	Code     *handler.CodeHandler
	Document *handler.DocumentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		// Settings
		api.GET("/get-settings", h.Settings.GetSettings)
		api.POST("/save-settings", h.Settings.SaveSettings)
		api.GET("/export-settings", h.Settings.ExportSettings)
		api.POST("/import-settings", h.Settings.ImportSettings)

		// Documents
		api.POST("/documents/number", h.Document.NextNumber)
		api.POST("/documents/preview", h.Document.Preview)
		api.POST("/documents/pdf-preview", h.Document.PDFPreview)
		api.POST("/documents/pdf", h.Document.ExportPDF)

		// Code verification is public but rate limited per client IP
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		api.POST("/verify-code", rateLimiter.Middleware(), h.Code.VerifyCode)

		// Admin login
		api.POST("/admin/login", h.Auth.Login)

		// Code administration (admin token required)
		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware(deps.JWTManager))
		{
			admin.POST("/generate-code", h.Code.GenerateCode)
			admin.POST("/generate-bulk-codes", h.Code.GenerateBulkCodes)
			admin.GET("/codes", h.Code.ListCodes)
		}
	}

	return router
}
