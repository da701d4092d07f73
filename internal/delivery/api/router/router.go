// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"studymind/config"
	"studymind/internal/delivery/api/middleware"
	"studymind/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	HealthHandler   *handler.HealthHandler
	GreetingHandler *handler.GreetingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	healthHandler   *handler.HealthHandler
	greetingHandler *handler.GreetingHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		healthHandler:   params.HealthHandler,
		greetingHandler: params.GreetingHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Root routes used by probes and older clients.
	e.GET("/health", r.healthHandler.Liveness)
	e.GET("/health/db", r.healthHandler.Readiness)
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	api := e.Group(strings.TrimRight(r.config.HTTP.APIPrefix, "/"))
	{
		api.GET("/health", r.healthHandler.Liveness)
		api.GET("/health/db", r.healthHandler.Readiness)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
	}

	helloGroup := api.Group("/hello")
	{
		helloGroup.GET("/student", r.greetingHandler.HelloStudent)
		helloGroup.GET("/parent", r.greetingHandler.HelloParent)
	}
}
