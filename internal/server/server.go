package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/auth"
	"github.com/lucasraugi/presentes-api/internal/config"
	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/handlers"
	"github.com/lucasraugi/presentes-api/internal/images"
	"github.com/lucasraugi/presentes-api/internal/logger"
	"github.com/lucasraugi/presentes-api/internal/middleware"
	"github.com/lucasraugi/presentes-api/internal/pix"
	"github.com/lucasraugi/presentes-api/internal/storage/database"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	db         *gorm.DB
	images     images.Store
	auth       *auth.Manager
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB, imageStore images.Store, authManager *auth.Manager) *Server {
	return &Server{
		config: cfg,
		db:     db,
		images: imageStore,
		auth:   authManager,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Repositories and services
	giftRepo := database.NewGiftRepository(s.db)
	contributionRepo := database.NewContributionRepository(s.db)
	confirmationRepo := database.NewConfirmationRepository(s.db)
	ledgerService := ledger.NewService(giftRepo, contributionRepo)
	encoder := pix.NewEncoder(s.config.Pix.Key, s.config.Pix.MerchantName, s.config.Pix.MerchantCity)

	// Handlers
	giftHandler := handlers.NewGiftHandler(ledgerService, s.images, s.config.Upload.MaxFileSize)
	contributionHandler := handlers.NewContributionHandler(ledgerService, encoder)
	confirmationHandler := handlers.NewConfirmationHandler(confirmationRepo)
	adminHandler := handlers.NewAdminHandler(s.auth)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Presentes API is running",
			"status":  "healthy",
		})
	})

	// Locally stored gift images
	router.Static("/uploads", s.config.Upload.Dir)

	s.setupAPIRoutes(router, giftHandler, contributionHandler, confirmationHandler, adminHandler)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	giftHandler *handlers.GiftHandler,
	contributionHandler *handlers.ContributionHandler,
	confirmationHandler *handlers.ConfirmationHandler,
	adminHandler *handlers.AdminHandler,
) {
	requireAdmin := middleware.RequireAdmin(s.auth)

	api := router.Group("/api")
	{
		api.POST("/admin/login", adminHandler.Login)

		gifts := api.Group("/gifts")
		{
			gifts.GET("", giftHandler.GetAllGifts)
			gifts.GET("/:id", giftHandler.GetGift)
			gifts.POST("/:id/contributions", contributionHandler.CreateContribution)

			gifts.POST("", requireAdmin, giftHandler.CreateGift)
			gifts.DELETE("/:id", requireAdmin, giftHandler.DeleteGift)
			gifts.POST("/:id/image", requireAdmin, giftHandler.UploadImage)
		}

		contributions := api.Group("/contributions", requireAdmin)
		{
			contributions.GET("", contributionHandler.GetAllContributions)
			contributions.GET("/export", contributionHandler.ExportContributions)
			contributions.PATCH("/:id", contributionHandler.UpdateContribution)
			contributions.DELETE("/:id", contributionHandler.DeleteContribution)
		}

		confirmations := api.Group("/confirmations")
		{
			confirmations.POST("", confirmationHandler.CreateConfirmation)
			confirmations.GET("", requireAdmin, confirmationHandler.GetAllConfirmations)
			confirmations.DELETE("/:id", requireAdmin, confirmationHandler.DeleteConfirmation)
		}
	}
}
