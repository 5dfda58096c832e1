package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"accounts-be/internal/config"
	"accounts-be/internal/controllers"
	"accounts-be/internal/database"
	"accounts-be/internal/jwt"
	"accounts-be/internal/middleware"
	"accounts-be/internal/repository"
	"accounts-be/internal/security"
	"accounts-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize password hasher and JWT service
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLMinutes)*time.Minute,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	profileService := service.NewProfileService(userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(profileService)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes (no token required)
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Profile routes - require JWT authentication
	me := router.Group("/me")
	me.Use(middleware.AuthMiddleware(jwtService, userRepo))
	{
		me.GET("", profileController.GetProfile)
		me.PATCH("", profileController.UpdateProfile)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
