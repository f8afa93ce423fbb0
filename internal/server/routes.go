package server

import "github.com/labstack/echo/v4"

func registerRoutes(e *echo.Echo, h *handlers) {
	e.GET("/health", h.health)

	api := e.Group("/api")

	alerts := api.Group("/alerts")
	alerts.GET("", h.listAlerts)
	alerts.POST("", h.raiseAlert)
	alerts.DELETE("/:id", h.removeAlert)

	posts := api.Group("/posts")
	posts.GET("", h.listPosts)
	posts.POST("", h.createPost)
}
