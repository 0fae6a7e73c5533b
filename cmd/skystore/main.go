package main

import (
	"github.com/An2rei-84/skystore/internal/handler"
	mid "github.com/An2rei-84/skystore/internal/middleware"
	"github.com/An2rei-84/skystore/internal/notify"
	"github.com/An2rei-84/skystore/pkg/config"
	"github.com/An2rei-84/skystore/pkg/database"
	"github.com/An2rei-84/skystore/pkg/jwtutil"
	"github.com/An2rei-84/skystore/pkg/logger"
	"github.com/An2rei-84/skystore/pkg/mailer"
	"github.com/An2rei-84/skystore/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting skystore",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Wire handlers to config and the notification mailer
	notifier := notify.New(mailer.New(&appConfig.Email), appConfig.Email.Recipient, log)
	handler.Init(appConfig, notifier)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/api/auth/register", handler.Register)
	e.POST("/api/auth/login", handler.Login)
	e.GET("/api/auth/me", handler.Me, mid.AuthMiddleware)

	// Product API routes - list is public, everything else needs auth
	e.GET("/api/products", handler.ListProducts)
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)
	productAPI.POST("/:id/unpublish", handler.UnpublishProduct)

	// Category API routes - reads are public, writes are staff only
	e.GET("/api/categories", handler.ListCategories)
	e.GET("/api/categories/:id", handler.GetCategory)
	categoryAPI := e.Group("/api/categories", mid.AuthMiddleware)
	categoryAPI.POST("", handler.CreateCategory)
	categoryAPI.PUT("/:id", handler.UpdateCategory)
	categoryAPI.DELETE("/:id", handler.DeleteCategory)

	// Blog API routes - reads are public, writes are permission gated
	e.GET("/api/blog", handler.ListBlogPosts)
	e.GET("/api/blog/:slug", handler.GetBlogPost)
	blogAPI := e.Group("/api/blog", mid.AuthMiddleware)
	blogAPI.POST("", handler.CreateBlogPost)
	blogAPI.PUT("/:slug", handler.UpdateBlogPost)
	blogAPI.DELETE("/:slug", handler.DeleteBlogPost)

	// Feedback and contacts
	e.GET("/api/contacts", handler.GetContacts)
	e.POST("/api/feedback", handler.CreateFeedback)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
