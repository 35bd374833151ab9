package http

import (
	"github.com/gin-gonic/gin"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/handlers"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/middleware"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	tokenService ports.TokenService,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		authed := api.Group("", middleware.AuthMiddleware(tokenService))
		{
			authed.GET("/me", authHandler.Me)

			authed.GET("/tasks", taskHandler.ListTasks)
			authed.POST("/tasks", taskHandler.CreateTask)
			authed.GET("/tasks/:id", taskHandler.GetTask)
			// PUT on the wire, PATCH semantics in the payload.
			authed.PUT("/tasks/:id", taskHandler.UpdateTask)
			authed.DELETE("/tasks/:id", taskHandler.DeleteTask)
		}
	}
}
