// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"partnerauth/config"
	"partnerauth/internal/delivery/api/middleware"
	"partnerauth/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the routes need, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// Router holds all the handlers that need to be registered.
type Router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	basePath       string
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		basePath:       params.Config.HTTP.BasePath,
	}
}

// RegisterRoutes sets up all the API routes under the configured base path.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(r.basePath)

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Profile routes require a valid access token
	profileGroup := usersGroup.Group("/profile", r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.userHandler.GetProfile)
		profileGroup.PATCH("", r.userHandler.UpdateProfile)
	}
}
