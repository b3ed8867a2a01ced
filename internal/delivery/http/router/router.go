// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	ProfileHandler      *handler.ProfileHandler
	ThemeHandler        *handler.ThemeHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	profileHandler      *handler.ProfileHandler
	themeHandler        *handler.ThemeHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		profileHandler:      params.ProfileHandler,
		themeHandler:        params.ThemeHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/restore", r.authHandler.Restore)
		authGroup.POST("/clear-error", r.authHandler.ClearError)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Catalog routes are open reads
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/supplies", r.catalogHandler.ListSupplies)
		catalogGroup.GET("/crops", r.catalogHandler.ListCrops)
		catalogGroup.GET("/diseases", r.catalogHandler.ListDiseases)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Summary)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.PUT("/search", r.cartHandler.SetSearch)
	}

	// Profile routes require a valid session marker
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Profile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	// Theme routes
	themeGroup := e.Group("/theme")
	{
		themeGroup.GET("", r.themeHandler.Snapshot)
		themeGroup.PUT("/mode", r.themeHandler.SetMode)
		themeGroup.PUT("/accent-color", r.themeHandler.SetAccentColor)
		themeGroup.PUT("/font-size", r.themeHandler.SetFontSize)
		themeGroup.PUT("/background", r.themeHandler.SetBackground)
	}

	// Notification routes
	e.GET("/notifications/recent", r.notificationHandler.Recent)
}
