package api

import (
	"net/http"

	"github.com/asmith-studio/portfolio-backend/errs"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/asmith-studio/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type threeDHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newThreeDHandler(portfolio *services.PortfolioService) threeDHandler {
	logger := log.With().Str("handlerName", "threeDHandler").Logger()

	return threeDHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// ThreeDProjectCollection represents a list of 3D projects
type ThreeDProjectCollection struct {
	Projects []models.ThreeDProject `json:"projects"`
	Total    int                    `json:"total"`
}

// getFeatured3DProjects retrieves featured 3D projects
// @Summary Get featured 3D projects
// @Tags 3D
// @Produce json
// @Param limit query int false "Maximum number of projects (default 6)"
// @Success 200 {object} ThreeDProjectCollection
// @Router /3d-projects/featured [get]
func (h threeDHandler) getFeatured3DProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.portfolio.GetFeatured3DProjects(limitParam(r, 0))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "3d projects", err))
			return
		}

		h.responder.WriteJSON(w, ThreeDProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// get3DProjectBySlug retrieves a 3D project by its public slug
// @Summary Get 3D project by slug
// @Description Looks up a 3D project by slug and counts the view
// @Tags 3D
// @Produce json
// @Param slug path string true "3D project slug"
// @Success 200 {object} models.ThreeDProject
// @Failure 404 {object} ErrorResponse "Not Found - 3D project not found"
// @Router /3d-project/{slug} [get]
func (h threeDHandler) get3DProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.portfolio.Get3DProjectBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "3d project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("3d project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// get3DProjectRenders retrieves the renders of a 3D project
// @Summary Get 3D project renders
// @Tags 3D
// @Produce json
// @Param projectID path int true "3D project ID"
// @Success 200 {array} models.ThreeDRender
// @Router /3d-project/{projectID}/renders [get]
func (h threeDHandler) get3DProjectRenders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := idParam(r, "projectID")
		if projectID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		renders, err := h.portfolio.Get3DProjectRenders(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "3d renders", err))
			return
		}

		h.responder.WriteJSON(w, renders)
	}
}
