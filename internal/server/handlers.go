package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olegmenkov/access-finder/internal/models"
	"github.com/olegmenkov/access-finder/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type categoryResponse struct {
	ID    string `json:"id"`    // Opaque identifier, round-tripped on selection
	Label string `json:"label"` // Localized display label
}

type startSearchRequest struct {
	ChatID int64 `json:"chat_id"`
}

type locationRequest struct {
	ChatID int64  `json:"chat_id"`
	Query  string `json:"query"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchRequest struct {
	ChatID   int64  `json:"chat_id"`
	Category string `json:"category"`
}

type venueResponse struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
	MapLink        string  `json:"map_link"`
}

// handleCategories returns the closed category set with opaque identifiers
// and display labels, in stable presentation order.
func (s *Server) handleCategories(c *gin.Context) {
	categories := make([]categoryResponse, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		categories = append(categories, categoryResponse{
			ID:    string(category),
			Label: category.Label(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// handleStartSearch begins a search conversation for the chat.
func (s *Server) handleStartSearch(c *gin.Context) {
	var req startSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "chat_id is required"})
		return
	}

	if err := s.search.StartSearch(c.Request.Context(), req.ChatID); err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to start search", "chat", req.ChatID, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "awaiting_location"})
}

// handleLocation resolves a free-text location and stores it as the chat's
// origin. A location that cannot be resolved is a 404 the front-end turns
// into a re-prompt, not a failure.
func (s *Server) handleLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == 0 || req.Query == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "chat_id and query are required"})
		return
	}

	point, err := s.search.ResolveLocation(c.Request.Context(), req.ChatID, req.Query)
	if errors.Is(err, service.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "location_not_found"})
		return
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to resolve location", "chat", req.ChatID, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, locationResponse{Latitude: point.Latitude, Longitude: point.Longitude})
}

// handleSearch runs the venue search for the chat's stored origin. An empty
// venue list is a valid 200 response; picking a category before resolving a
// location is a 409.
func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == 0 || req.Category == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "chat_id and category are required"})
		return
	}

	venues, err := s.search.Search(c.Request.Context(), req.ChatID, models.Category(req.Category))
	if errors.Is(err, service.ErrNoOrigin) {
		c.JSON(http.StatusConflict, errorResponse{Error: "no_origin"})
		return
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Search failed", "chat", req.ChatID, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	response := make([]venueResponse, 0, len(venues))
	for _, venue := range venues {
		response = append(response, venueResponse{
			Name:           venue.Name,
			Address:        venue.Address,
			Latitude:       venue.Point.Latitude,
			Longitude:      venue.Point.Longitude,
			DistanceMeters: venue.DistanceMeters,
			MapLink:        venue.MapLink,
		})
	}

	c.JSON(http.StatusOK, gin.H{"venues": response})
}
