package api

import (
	"encoding/json"
	"net/http"

	"github.com/asmith-studio/portfolio-backend/errs"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/asmith-studio/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newGalleryHandler(portfolio *services.PortfolioService) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// GalleryCollection represents a list of galleries
type GalleryCollection struct {
	Galleries []models.Gallery `json:"galleries"`
	Total     int              `json:"total"`
}

// getFeaturedGalleries retrieves public featured galleries
// @Summary Get featured galleries
// @Tags Galleries
// @Produce json
// @Param limit query int false "Maximum number of galleries (default 6)"
// @Success 200 {object} GalleryCollection
// @Router /galleries/featured [get]
func (h galleryHandler) getFeaturedGalleries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		galleries, err := h.portfolio.GetFeaturedGalleries(limitParam(r, 0))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "galleries", err))
			return
		}

		h.responder.WriteJSON(w, GalleryCollection{Galleries: galleries, Total: len(galleries)})
	}
}

// getGalleriesByType retrieves public galleries filtered by type
// @Summary Get galleries by type
// @Tags Galleries
// @Produce json
// @Param type query string true "Gallery type (portfolio, personal, client, exhibition)"
// @Param limit query int false "Maximum number of galleries (all when omitted)"
// @Success 200 {object} GalleryCollection
// @Failure 400 {object} ErrorResponse "Bad Request - unknown gallery type"
// @Router /galleries [get]
func (h galleryHandler) getGalleriesByType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		galleryType := models.GalleryType(r.URL.Query().Get("type"))
		if !galleryType.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("type", "unknown gallery type"))
			return
		}

		galleries, err := h.portfolio.GetGalleriesByType(galleryType, limitParam(r, 0))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "galleries", err))
			return
		}

		h.responder.WriteJSON(w, GalleryCollection{Galleries: galleries, Total: len(galleries)})
	}
}

// getGalleryBySlug retrieves a gallery by its public slug
// @Summary Get gallery by slug
// @Description Looks up a gallery by slug and counts the view
// @Tags Galleries
// @Produce json
// @Param slug path string true "Gallery slug"
// @Success 200 {object} models.Gallery
// @Failure 404 {object} ErrorResponse "Not Found - Gallery not found"
// @Router /gallery/{slug} [get]
func (h galleryHandler) getGalleryBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		gallery, err := h.portfolio.GetGalleryBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery", err))
			return
		}
		if gallery == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("gallery not found"))
			return
		}

		h.responder.WriteJSON(w, gallery)
	}
}

// getGalleryPhotos retrieves the photos of a gallery
// @Summary Get gallery photos
// @Tags Galleries
// @Produce json
// @Param galleryID path int true "Gallery ID"
// @Success 200 {array} models.Photo
// @Router /gallery/{galleryID}/photos [get]
func (h galleryHandler) getGalleryPhotos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		galleryID := idParam(r, "galleryID")
		if galleryID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryID"))
			return
		}

		photos, err := h.portfolio.GetGalleryPhotos(galleryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery photos", err))
			return
		}

		h.responder.WriteJSON(w, photos)
	}
}

// updateGallery applies a partial update to an existing gallery
// @Summary Update gallery
// @Tags Galleries
// @Accept json
// @Produce json
// @Param galleryID path int true "Gallery ID"
// @Param gallery body models.GalleryUpdate true "Fields to update"
// @Success 200 {object} models.Gallery
// @Failure 404 {object} ErrorResponse "Not Found - Gallery not found"
// @Router /gallery/{galleryID} [put]
func (h galleryHandler) updateGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		galleryID := idParam(r, "galleryID")
		if galleryID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid galleryID"))
			return
		}

		var update models.GalleryUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode gallery update body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		gallery, err := h.portfolio.UpdateGallery(galleryID, update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if gallery == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("gallery not found"))
			return
		}

		h.responder.WriteJSON(w, gallery)
	}
}
