package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/messages"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, messages.RouteNotFound)
	})
	router.NoMethod(func(ctx *gin.Context) {
		response.MethodNotAllowed(ctx, messages.MethodNotAllowed)
	})

	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupPostRoutes(router, c)

	return router
}

func setupAuthRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/register", c.UserHandler.Register)
	r.POST("/login", c.UserHandler.Login)
}

// Comment routes share the :id wildcard with their parent post.
func setupPostRoutes(r *gin.Engine, c *container.Container) {
	posts := r.Group("/posts")
	posts.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		posts.GET("", c.PostHandler.List)
		posts.POST("", c.PostHandler.Create)
		posts.GET("/:id", c.PostHandler.Get)
		posts.PUT("/:id", c.PostHandler.Update)
		posts.DELETE("/:id", c.PostHandler.Delete)

		posts.POST("/:id/comments", c.CommentHandler.Add)
		posts.PUT("/:id/comments/:commentId", c.CommentHandler.Update)
		posts.DELETE("/:id/comments/:commentId", c.CommentHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		services, ok := c.Health(ctx.Request.Context())

		status := "ok"
		code := http.StatusOK
		if !ok {
			status = "unavailable"
			code = http.StatusServiceUnavailable
		} else if services["redis"] == "unhealthy" {
			status = "degraded"
		}

		ctx.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Unix(),
			"version":   c.Config.App.Version,
			"services":  services,
		})
	}
}
