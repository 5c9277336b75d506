package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes consumed by the site frontend
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Site endpoints
		r.Get("/site-config", handlers.siteHandler.getSiteConfig())
		r.Put("/site-config", handlers.siteHandler.updateSiteConfig())
		r.Get("/owner", handlers.siteHandler.getOwner())

		// Project endpoints
		r.Get("/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/projects", handlers.projectHandler.getProjectsByType())
		r.Get("/project/{slug}", handlers.projectHandler.getProjectBySlug())
		r.Get("/project/{projectID}/images", handlers.projectHandler.getProjectImages())
		r.Get("/project/{projectID}/sections", handlers.projectHandler.getProjectSections())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())

		// Gallery endpoints
		r.Get("/galleries/featured", handlers.galleryHandler.getFeaturedGalleries())
		r.Get("/galleries", handlers.galleryHandler.getGalleriesByType())
		r.Get("/gallery/{slug}", handlers.galleryHandler.getGalleryBySlug())
		r.Get("/gallery/{galleryID}/photos", handlers.galleryHandler.getGalleryPhotos())
		r.Put("/gallery/{galleryID}", handlers.galleryHandler.updateGallery())

		// 3D project endpoints
		r.Get("/3d-projects/featured", handlers.threeDHandler.getFeatured3DProjects())
		r.Get("/3d-project/{slug}", handlers.threeDHandler.get3DProjectBySlug())
		r.Get("/3d-project/{projectID}/renders", handlers.threeDHandler.get3DProjectRenders())

		// Contact endpoints
		r.Post("/contact", handlers.contactHandler.createContactMessage())
		r.Get("/messages", handlers.contactHandler.getRecentMessages())
		r.Put("/message/{messageID}", handlers.contactHandler.updateContactMessage())
	})
}
