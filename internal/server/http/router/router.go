package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/solenik/userhub/internal/config"
	"github.com/solenik/userhub/internal/server/http/handlers"
	"github.com/solenik/userhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccountFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.GET("/test", authHandler.Test)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	users := api.Group("/users")
	users.Use(middleware.AuthRequired(facade))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)

	return engine
}
