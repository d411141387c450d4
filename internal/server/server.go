// Package server exposes the search pipeline as a small JSON API for the
// conversational front-end. It is a thin I/O layer: all pipeline semantics
// live in the service package.
package server

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/olegmenkov/access-finder/internal/models"
)

// SearchPipeline is the surface of the search service the API needs.
type SearchPipeline interface {
	StartSearch(ctx context.Context, chatID int64) error
	ResolveLocation(ctx context.Context, chatID int64, query string) (*models.GeoPoint, error)
	Search(ctx context.Context, chatID int64, category models.Category) ([]models.DisplayVenue, error)
}

// Server holds the API handlers and their dependencies.
type Server struct {
	log    *slog.Logger
	search SearchPipeline
}

// New creates an API server over the given search pipeline.
func New(log *slog.Logger, search SearchPipeline) *Server {
	return &Server{log: log, search: search}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	api.GET("/categories", s.handleCategories)
	api.POST("/search/start", s.handleStartSearch)
	api.POST("/location", s.handleLocation)
	api.POST("/search", s.handleSearch)

	return router
}
