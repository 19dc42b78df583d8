package main

import (
	"net/http"
	"os"

	"mojamalca-api/config"
	"mojamalca-api/handlers"
	"mojamalca-api/logger"
	"mojamalca-api/mailer"
	"mojamalca-api/middleware"
	"mojamalca-api/models"
	"mojamalca-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.Load()

	if err := logger.Init(config.App.LogLevel, config.App.Env); err != nil {
		panic(err)
	}
	defer logger.L().Sync()

	if config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB()
	seedAdmin()

	handlers.Mail = mailer.New(config.App.ResendAPIKey)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ZapLogger(),
		middleware.HTTPMetrics(),
		gin.Recovery(),
	)

	// CORS middleware for the marketing site and the ordering SPA
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
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
			"service": "MojaMalca Catering API",
			"version": "1.0.0",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(middleware.PrometheusHandler()))

	routes.SetupRoutes(r)

	logger.L().Info("Server starting", zap.String("port", config.App.Port))
	if err := r.Run(":" + config.App.Port); err != nil {
		logger.L().Fatal("Failed to start server", zap.Error(err))
	}
}

// seedAdmin creates the bootstrap back-office account when ADMIN_EMAIL
// and ADMIN_PASSWORD are set and no admin with that email exists yet.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.Admin
	if result := config.DB.Where("email = ?", email).First(&existing); result.Error == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.L().Error("Failed to hash admin password", zap.Error(err))
		return
	}
	admin := models.Admin{Name: "Administrator", Email: email, PasswordHash: string(hash)}
	if err := config.DB.Create(&admin).Error; err != nil {
		logger.L().Error("Failed to seed admin account", zap.Error(err))
		return
	}
	logger.L().Info("Seeded admin account", zap.String("email", email))
}
