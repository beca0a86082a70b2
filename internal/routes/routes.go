// Package routes defines HTTP routes for the dictionary service.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-bomo/cuvinte-banatene/internal/config"
	"github.com/dev-bomo/cuvinte-banatene/internal/handlers"
	"github.com/dev-bomo/cuvinte-banatene/internal/middleware"
	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/service"
	"github.com/dev-bomo/cuvinte-banatene/pkg/respond"
)

// Handlers bundles the handler set wired into the route table.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Word   *handlers.WordHandler
	User   *handlers.UserHandler
	Smile  *handlers.SmileHandler
	Search *handlers.SearchHandler
	Health *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, authService service.AuthService, h Handlers) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		respond.AbortError(c, http.StatusInternalServerError, "Something went wrong!")
	}))
	router.Use(middleware.RequestMetrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Ops endpoints outside the API prefix.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authenticate := middleware.Authenticate(authService)
	contributorOrAdmin := middleware.RequireRole(models.RoleAdmin, models.RoleContributor)
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	verifiedEmail := middleware.RequireVerifiedEmail()

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Check)

		words := api.Group("/words")
		{
			words.GET("", h.Word.List)
			words.GET("/alphabetical", h.Word.Alphabetical)
			words.GET("/:id", h.Word.Get)
		}

		api.GET("/search", h.Search.Search)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", authenticate, h.Auth.Me)
			auth.POST("/verify-email", h.Auth.VerifyEmail)
			auth.POST("/resend-verification", h.Auth.ResendVerification)
			auth.POST("/logout", h.Auth.Logout)
		}

		admin := api.Group("/admin", authenticate, contributorOrAdmin)
		{
			admin.POST("/words", verifiedEmail, h.Word.Create)
			admin.GET("/words", h.Word.List)
			admin.GET("/words/:id", h.Word.Get)
			admin.PUT("/words/:id", verifiedEmail, h.Word.Update)
			admin.DELETE("/words/:id", verifiedEmail, h.Word.Delete)
		}

		users := api.Group("/users", authenticate, adminOnly)
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Create)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		smiles := api.Group("/smiles")
		{
			smiles.POST("", h.Smile.Smile)
			smiles.POST("/user", authenticate, h.Smile.SmileAsUser)
			smiles.GET("/user", authenticate, h.Smile.ListUserSmiles)
			smiles.DELETE("/user/:wordId", authenticate, h.Smile.Unsmile)
		}
	}
}
