package http

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/handlers"
	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/middleware"
	"github.com/NanduBolleddu/Todofy-project/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	verifier ports.TokenVerifier,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
) {
	r.GET("/health", middleware.LanguageMiddleware(), healthHandler.CheckHealth)
	r.GET("/health/report", middleware.LanguageMiddleware(), healthHandler.CheckHealthReport)

	tasks := r.Group("/tasks")
	tasks.Use(middleware.LanguageMiddleware(), middleware.RequireAuth(verifier))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
	}
}

// RegisterWebRoutes serves the embedded single-page frontend. The file
// server is mounted as the NoRoute fallback so it cannot shadow the API.
func RegisterWebRoutes(r *gin.Engine, webFS fs.FS, webConfigHandler *handlers.WebConfigHandler) {
	r.GET("/config.js", webConfigHandler.ConfigJS)

	fileServer := http.FileServer(http.FS(webFS))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
