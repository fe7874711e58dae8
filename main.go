package main

import (
	"net/http"
	"os"

	"github.com/AfanKulaglic/saraya-menu-api/config"
	"github.com/AfanKulaglic/saraya-menu-api/middleware"
	"github.com/AfanKulaglic/saraya-menu-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Load env, logger, and secrets, then the database
	config.Init()
	defer config.Log.Sync()
	config.InitDB()

	// Create Gin router with our middleware (zap logger + recovery)
	r := gin.New()
	r.Use(middleware.RequestLogger(config.Log), gin.Recovery())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Saraya Digital Menu API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽️ Welcome to the Saraya Digital Menu API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"owner", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Log.Info("🚀 Server running", zap.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
