package main

import (
	"fmt"
	"goalplanner/internal/catalog"
	"goalplanner/internal/config"
	"goalplanner/internal/database"
	"goalplanner/internal/handlers"
	"goalplanner/internal/logger"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/middleware"
	"goalplanner/internal/models"
	"goalplanner/internal/services"
	"goalplanner/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "goalplanner/internal/docs" // Import swagger docs
)

// @title           Goal Planner API
// @version         1.0
// @description     Plans savings goals and recommends instruments backed by market data.

// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(&models.Goal{}); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Instrument catalog and market data client
	cat, err := catalog.Load(appConfig.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load instrument catalog: %w", err)
	}
	period, err := marketdata.ParsePeriod(appConfig.MarketDataPeriod, marketdata.Period2Years)
	if err != nil {
		return fmt.Errorf("invalid MARKET_DATA_PERIOD: %w", err)
	}
	marketClient := marketdata.NewClient(appConfig.MarketDataCacheTTL,
		marketdata.NewYahooProvider(), marketdata.NewFundProvider())

	// Initialize services
	db := dbManager.DB()
	goalService := services.NewGoalService(db, appConfig.DefaultInflationRate, appConfig.DefaultExpectedReturn)
	planService := services.NewPlanService(goalService, appConfig.DefaultInflationRate, appConfig.DefaultExpectedReturn)
	marketService := services.NewMarketDataService(marketClient, cat, appConfig.RiskFreeRate)
	recommendationService := services.NewRecommendationService(goalService, marketService, cat, period, appConfig.RiskFreeRate)

	// Initialize handlers
	goalHandler := handlers.NewGoalHandler(goalService)
	planHandler := handlers.NewPlanHandler(planService)
	marketHandler := handlers.NewMarketHandler(marketService, period)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Goal routes
	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.GET("/:id/plan", planHandler.GetPlan)
	goals.GET("/:id/projection", planHandler.GetProjection)
	goals.GET("/:id/projection/chart", planHandler.GetProjectionChart)
	goals.GET("/:id/recommendations", recommendationHandler.GetRecommendations)

	// Plan routes
	plans := v1.Group("/plans")
	plans.POST("/preview", planHandler.PreviewPlan)

	// Market data routes
	market := v1.Group("/market")
	market.GET("/instruments/:symbol/history", marketHandler.GetHistory)
	market.GET("/instruments/:symbol/summary", marketHandler.GetSummary)
	market.GET("/instruments/:symbol/metrics", marketHandler.GetMetrics)
	market.GET("/instruments/:symbol/chart", marketHandler.GetChart)
	market.GET("/sectors", marketHandler.GetSectors)
	market.GET("/benchmark", marketHandler.GetBenchmark)

	log.Infof("Starting goal planner API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
