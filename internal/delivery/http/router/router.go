// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"recruitcms/internal/delivery/http/middleware"
	"recruitcms/internal/delivery/http/router/handler"
	"recruitcms/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	NewsHandler    *handler.NewsHandler
	JobHandler     *handler.JobHandler
	UploadHandler  *handler.UploadHandler
	StatusHandler  *handler.StatusHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	newsHandler    *handler.NewsHandler
	jobHandler     *handler.JobHandler
	uploadHandler  *handler.UploadHandler
	statusHandler  *handler.StatusHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		newsHandler:    params.NewsHandler,
		jobHandler:     params.JobHandler,
		uploadHandler:  params.UploadHandler,
		statusHandler:  params.StatusHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.statusHandler.Health)

	api := e.Group("/api")

	// Auth routes. Registration is admin-only: new accounts are created
	// from the back office, never by self-service.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
		authGroup.POST("/register", r.authHandler.Register,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Content routes. Reads are public for the site frontend; writes need
	// authentication and the "admin" role.
	adminOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}

	newsGroup := api.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.List)
		newsGroup.GET("/:slug", r.newsHandler.GetBySlug)
		newsGroup.POST("", r.newsHandler.Create, adminOnly...)
		newsGroup.PUT("/:id", r.newsHandler.Update, adminOnly...)
		newsGroup.DELETE("/:id", r.newsHandler.Delete, adminOnly...)
	}

	jobGroup := api.Group("/jobs")
	{
		jobGroup.GET("", r.jobHandler.List)
		jobGroup.GET("/:slug", r.jobHandler.GetBySlug)
		jobGroup.POST("", r.jobHandler.Create, adminOnly...)
		jobGroup.PUT("/:id", r.jobHandler.Update, adminOnly...)
		jobGroup.DELETE("/:id", r.jobHandler.Delete, adminOnly...)
	}

	api.POST("/uploads", r.uploadHandler.Upload, adminOnly...)

	// Back-office listings that include drafts and closed postings.
	adminGroup := api.Group("/admin", adminOnly...)
	{
		adminGroup.GET("/news", r.newsHandler.ListAll)
		adminGroup.GET("/jobs", r.jobHandler.ListAll)
	}
}
