// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farha/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BeautyHandler   *handler.BeautyHandler
	CatalogHandler  *handler.CatalogHandler
	FavoriteHandler *handler.FavoriteHandler
	OwnerHandler    *handler.OwnerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	beautyHandler   *handler.BeautyHandler
	catalogHandler  *handler.CatalogHandler
	favoriteHandler *handler.FavoriteHandler
	ownerHandler    *handler.OwnerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		beautyHandler:   params.BeautyHandler,
		catalogHandler:  params.CatalogHandler,
		favoriteHandler: params.FavoriteHandler,
		ownerHandler:    params.OwnerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	beautyGroup := e.Group("/beauty-centers")
	{
		beautyGroup.GET("", r.beautyHandler.List)
		beautyGroup.GET("/search", r.beautyHandler.GetByName)
		beautyGroup.GET("/:id", r.beautyHandler.GetByID)
		beautyGroup.POST("", r.beautyHandler.Add)
		beautyGroup.PUT("/:id", r.beautyHandler.Update)
		beautyGroup.DELETE("/:id", r.beautyHandler.DeleteByID)
		beautyGroup.POST("/sub-services", r.beautyHandler.AddSubServices)
		beautyGroup.DELETE("/:id/sub-services/:subServiceId", r.beautyHandler.RemoveSubService)
	}

	// Cross-kind discovery over the shared service root
	e.GET("/services/:kind", r.catalogHandler.ListByKind)
	e.GET("/services/:kind/:id", r.catalogHandler.GetByID)

	favoriteGroup := e.Group("/favorites")
	{
		favoriteGroup.POST("", r.favoriteHandler.Add)
		favoriteGroup.DELETE("/:serviceId", r.favoriteHandler.Remove)
	}

	e.POST("/owners/register", r.ownerHandler.Register)
}
