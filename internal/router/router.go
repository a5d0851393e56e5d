package router

import (
	"github.com/gin-gonic/gin"

	"pomobar/internal/handler"
	"pomobar/internal/middleware"
	"pomobar/internal/service"
)

type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Timer    *handler.TimerHandler
	Settings *handler.SettingsHandler
	Stats    *handler.StatsHandler
}

func New(authService *service.AuthService, handlers Handlers, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", handlers.Health.Check)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/token", handlers.Auth.Token)

	protected := api.Group("")
	protected.Use(middleware.Auth(authService))

	timer := protected.Group("/timer")
	timer.GET("/state", handlers.Timer.GetState)
	timer.POST("/start", handlers.Timer.Start)
	timer.POST("/pause", handlers.Timer.Pause)
	timer.POST("/resume", handlers.Timer.Resume)
	timer.POST("/stop", handlers.Timer.Stop)
	timer.POST("/complete", handlers.Timer.Complete)
	timer.POST("/skip-break", handlers.Timer.SkipBreak)
	timer.GET("/events", handlers.Timer.Events)

	protected.GET("/settings", handlers.Settings.Get)
	protected.PUT("/settings", handlers.Settings.Update)

	stats := protected.Group("/stats")
	stats.GET("", handlers.Stats.Range)
	stats.GET("/today", handlers.Stats.Today)
	stats.GET("/:date", handlers.Stats.Day)
	stats.POST("/reset", handlers.Stats.Reset)

	protected.GET("/history", handlers.Stats.History)
	protected.GET("/history/:id", handlers.Stats.Completion)

	return engine
}
