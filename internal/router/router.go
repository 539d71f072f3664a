// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/javajoker/storefront-admin/internal/config"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/handlers"
	"github.com/javajoker/storefront-admin/internal/middleware"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/services"
)

func Initialize(cfg *config.Config, sessions *services.SessionStore, limiter *middleware.RateLimiter) *gin.Engine {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sessions)
	userHandler := handlers.NewEntityHandler(func(ws *services.Workspace) *crud.Controller[models.User, models.UserForm] {
		return ws.Users
	})
	productHandler := handlers.NewEntityHandler(func(ws *services.Workspace) *crud.Controller[models.Product, models.ProductForm] {
		return ws.Products
	})
	orderHandler := handlers.NewEntityHandler(func(ws *services.Workspace) *crud.Controller[models.Order, models.OrderForm] {
		return ws.Orders
	})
	reviewHandler := handlers.NewEntityHandler(func(ws *services.Workspace) *crud.Controller[models.Review, models.ReviewForm] {
		return ws.Reviews
	})

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))

	// Health check
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(limiter.Middleware())
	v1.Use(middleware.Session(sessions, cfg.Session))
	{
		userHandler.Register(v1.Group("/users"))
		productHandler.Register(v1.Group("/products"))
		orderHandler.Register(v1.Group("/orders"))
		reviewHandler.Register(v1.Group("/reviews"))
	}

	return r
}
