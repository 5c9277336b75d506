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

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newProjectHandler(portfolio *services.PortfolioService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// ProjectCollection represents a list of projects
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// getFeaturedProjects retrieves featured published projects
// @Summary Get featured projects
// @Description Published, featured projects in showcase order
// @Tags Projects
// @Produce json
// @Param limit query int false "Maximum number of projects (default 6)"
// @Success 200 {object} ProjectCollection
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects/featured [get]
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.portfolio.GetFeaturedProjects(limitParam(r, 0))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProjectsByType retrieves published projects filtered by type
// @Summary Get projects by type
// @Tags Projects
// @Produce json
// @Param type query string true "Project type (ui_ux, photography, 3d_design, other)"
// @Param limit query int false "Maximum number of projects (all when omitted)"
// @Success 200 {object} ProjectCollection
// @Failure 400 {object} ErrorResponse "Bad Request - unknown project type"
// @Router /projects [get]
func (h projectHandler) getProjectsByType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectType := models.ProjectType(r.URL.Query().Get("type"))
		if !projectType.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("type", "unknown project type"))
			return
		}

		projects, err := h.portfolio.GetProjectsByType(projectType, limitParam(r, 0))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProjectBySlug retrieves a project by its public slug
// @Summary Get project by slug
// @Description Looks up a project regardless of status and counts the view
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.portfolio.GetProjectBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectImages retrieves the images of a project
// @Summary Get project images
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {array} models.ProjectImage
// @Router /project/{projectID}/images [get]
func (h projectHandler) getProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := idParam(r, "projectID")
		if projectID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		images, err := h.portfolio.GetProjectImages(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project images", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// getProjectSections retrieves the case-study sections of a project
// @Summary Get project sections
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {array} models.ProjectSection
// @Router /project/{projectID}/sections [get]
func (h projectHandler) getProjectSections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := idParam(r, "projectID")
		if projectID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		sections, err := h.portfolio.GetProjectSections(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project sections", err))
			return
		}

		h.responder.WriteJSON(w, sections)
	}
}

// updateProject applies a partial update to an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.ProjectUpdate true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := idParam(r, "projectID")
		if projectID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		var update models.ProjectUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project update body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		project, err := h.portfolio.UpdateProject(projectID, update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
