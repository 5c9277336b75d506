package api

import (
	"encoding/json"
	"net/http"

	"github.com/asmith-studio/portfolio-backend/errs"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/asmith-studio/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type siteHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newSiteHandler(portfolio *services.PortfolioService) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// getSiteConfig returns the site configuration
// @Summary Get site configuration
// @Tags Site
// @Produce json
// @Success 200 {object} models.SiteConfig
// @Failure 404 {object} ErrorResponse "Not Found - site not configured yet"
// @Router /site-config [get]
func (h siteHandler) getSiteConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := h.portfolio.GetSiteConfig()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site config", err))
			return
		}
		if config == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("site not configured"))
			return
		}

		h.responder.WriteJSON(w, config)
	}
}

// getOwner returns the portfolio owner profile
// @Summary Get portfolio owner
// @Tags Site
// @Produce json
// @Success 200 {object} models.Owner
// @Failure 404 {object} ErrorResponse "Not Found - no active owner"
// @Router /owner [get]
func (h siteHandler) getOwner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := h.portfolio.GetPortfolioOwner()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "owner", err))
			return
		}
		if owner == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("owner not found"))
			return
		}

		h.responder.WriteJSON(w, owner)
	}
}

// updateSiteConfig applies a partial update to the site configuration
// @Summary Update site configuration
// @Tags Site
// @Accept json
// @Produce json
// @Param config body models.SiteConfigUpdate true "Fields to update"
// @Success 200 {object} models.SiteConfig
// @Failure 400 {object} ErrorResponse "Bad Request - invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - site not configured yet"
// @Router /site-config [put]
func (h siteHandler) updateSiteConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update models.SiteConfigUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode site config update body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		config, err := h.portfolio.UpdateSiteConfig(update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if config == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("site not configured"))
			return
		}

		h.responder.WriteJSON(w, config)
	}
}
