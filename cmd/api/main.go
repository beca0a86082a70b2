// Package main is the entry point for the dictionary service.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/dev-bomo/cuvinte-banatene/internal/config"
	"github.com/dev-bomo/cuvinte-banatene/internal/database"
	"github.com/dev-bomo/cuvinte-banatene/internal/handlers"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
	"github.com/dev-bomo/cuvinte-banatene/internal/routes"
	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", "err", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		log.Fatal("Failed to seed database", "err", err)
	}

	// Initialize Redis (optional, enables the logout token blocklist)
	redisClient, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal("Failed to connect to Redis", "err", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	smileRepo := repository.NewSmileRepository(db)

	// Initialize services
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	if err != nil {
		log.Fatal("Failed to create token service", "err", err)
	}
	mailer := service.NewMailer(service.MailerConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		From:        cfg.MailFrom,
		FrontendURL: cfg.FrontendURL,
	})
	authService := service.NewAuthService(userRepo, tokenService, mailer, redisClient)
	wordService := service.NewWordService(wordRepo)
	userService := service.NewUserService(userRepo)
	smileService := service.NewSmileService(wordRepo, smileRepo)
	searchService := service.NewSearchService(wordRepo)

	// Initialize handlers
	h := routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		Word:   handlers.NewWordHandler(wordService),
		User:   handlers.NewUserHandler(userService),
		Smile:  handlers.NewSmileHandler(smileService),
		Search: handlers.NewSearchHandler(searchService),
		Health: handlers.NewHealthHandler(),
	}

	// Setup routes
	router := gin.New()
	router.Use(gin.Logger())
	routes.Setup(router, cfg, authService, h)

	log.Info("Starting dictionary service", "port", cfg.Port, "driver", cfg.DBDriver)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", "err", err)
	}
}
