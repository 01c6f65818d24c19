package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bodyai/backend/config"
	"github.com/bodyai/backend/internal/api"
	"github.com/bodyai/backend/internal/middleware"
	"github.com/bodyai/backend/internal/service"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Weight    *api.WeightHandler
	Routine   *api.RoutineHandler
	Recipe    *api.RecipeHandler
	Chat      *api.ChatHandler
	Upload    *api.UploadHandler
	Nutrition *api.NutritionHandler
	Health    *api.HealthHandler
}

// Setup configures the application routes.
func Setup(cfg *config.Config, h Handlers, authService service.IAuthService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(authService))
	{
		weights := protected.Group("/weights")
		{
			weights.GET("", h.Weight.List)
			weights.POST("", h.Weight.Create)
			weights.PUT("/:id", h.Weight.Update)
			weights.DELETE("/:id", h.Weight.Delete)
		}

		routines := protected.Group("/routines")
		{
			routines.GET("", h.Routine.List)
			routines.GET("/:id", h.Routine.Get)
			routines.POST("", h.Routine.Create)
			routines.PUT("/:id", h.Routine.Update)
			routines.DELETE("/:id", h.Routine.Delete)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", h.Recipe.List)
			recipes.GET("/:id", h.Recipe.Get)
			recipes.POST("", h.Recipe.Create)
			recipes.PUT("/:id", h.Recipe.Update)
			recipes.DELETE("/:id", h.Recipe.Delete)
		}

		protected.POST("/chat", h.Chat.Chat)
		protected.POST("/upload", h.Upload.Upload)
		protected.POST("/nutrition/calculate", h.Nutrition.Calculate)
	}

	return router
}
