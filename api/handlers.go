package api

import (
	"net/http"
	"strconv"

	"github.com/asmith-studio/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(portfolio *services.PortfolioService) *routeHandlers {
	return &routeHandlers{
		siteHandler:    newSiteHandler(portfolio),
		projectHandler: newProjectHandler(portfolio),
		galleryHandler: newGalleryHandler(portfolio),
		threeDHandler:  newThreeDHandler(portfolio),
		contactHandler: newContactHandler(portfolio),
	}
}

// limitParam reads the optional "limit" query parameter. Absent or
// unparsable values yield fallback.
func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return limit
}

// idParam reads a numeric URL parameter; returns 0 when missing or not a
// positive integer.
func idParam(r *http.Request, name string) uint {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
