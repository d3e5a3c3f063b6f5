// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"
	"gatekeeper/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	TenantHandler    *handler.TenantHandler
	UserHandler      *handler.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
	Metrics          *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	tenantHandler    *handler.TenantHandler
	userHandler      *handler.UserHandler
	authMiddleware   *middleware.AuthMiddleware
	tenantMiddleware *middleware.TenantMiddleware
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		tenantHandler:    params.TenantHandler,
		userHandler:      params.UserHandler,
		authMiddleware:   params.AuthMiddleware,
		tenantMiddleware: params.TenantMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	authGroup.Use(r.tenantMiddleware.Resolve)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)

		// Routes below require a valid access token
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Tenant administration
	tenantGroup := e.Group("/tenants")
	{
		tenantGroup.POST("", r.tenantHandler.CreateTenant)
		tenantGroup.GET("/:id", r.tenantHandler.GetTenant)
		tenantGroup.PATCH("/:id", r.tenantHandler.UpdateTenant)
	}

	// Tenant-scoped user administration (scope comes from the access token)
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
	}
}
