// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rating/internal/delivery/api/router/handler"
	"rating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and collector the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	BuildingHandler *handler.BuildingHandler
	CommentHandler  *handler.CommentHandler
	SummaryHandler  *handler.SummaryHandler
	Metrics         *metrics.Collector
}

// router holds all the handlers that need to be registered.
type router struct {
	buildingHandler *handler.BuildingHandler
	commentHandler  *handler.CommentHandler
	summaryHandler  *handler.SummaryHandler
	metrics         *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		buildingHandler: params.BuildingHandler,
		commentHandler:  params.CommentHandler,
		summaryHandler:  params.SummaryHandler,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.metrics.Registry(), promhttp.HandlerOpts{})))

	api := e.Group("/api")

	buildings := api.Group("/buildings")
	{
		buildings.GET("", r.buildingHandler.ListBuildings)
		buildings.POST("", r.buildingHandler.CreateBuilding)
		buildings.GET("/:id", r.buildingHandler.GetBuilding)
		buildings.GET("/:id/qr", r.buildingHandler.GetBuildingQR)

		// Comments are nested under their building and share its :id param.
		buildings.GET("/:id/comments", r.commentHandler.ListComments)
		buildings.POST("/:id/comments", r.commentHandler.CreateComment)
		buildings.GET("/:id/comments/stats", r.commentHandler.GetCommentStats)
	}

	summaries := api.Group("/summaries")
	{
		summaries.GET("/:buildingId", r.summaryHandler.GetSummary)
		summaries.PUT("/:buildingId", r.summaryHandler.UpdateSummary)
	}
}
