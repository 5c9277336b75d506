package services

import (
	"time"

	"github.com/asmith-studio/portfolio-backend/database"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default truncation for the listing operations.
const (
	DefaultFeaturedLimit       = 6
	DefaultRecentMessagesLimit = 10
)

// PortfolioService is the sole reader and mutator of portfolio state. It
// holds an injected database handle so callers (and tests) control which
// store each instance talks to.
type PortfolioService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewPortfolioService(db database.Database) *PortfolioService {
	return &PortfolioService{
		db:     db,
		logger: log.With().Str("serviceName", "portfolioService").Logger(),
	}
}

// GetSiteConfig returns the site configuration, or nil when unseeded.
func (s *PortfolioService) GetSiteConfig() (*models.SiteConfig, error) {
	return s.db.SiteConfigRepo().First()
}

// GetPortfolioOwner returns the first active owner, or nil.
func (s *PortfolioService) GetPortfolioOwner() (*models.Owner, error) {
	return s.db.OwnerRepo().FindActive()
}

// GetFeaturedProjects returns published, featured projects for the
// homepage showcase. A limit <= 0 falls back to the default of 6.
func (s *PortfolioService) GetFeaturedProjects(limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.db.ProjectRepo().FindFeatured(limit)
}

// GetProjectsByType returns published projects of the given type. A
// limit <= 0 returns all of them.
func (s *PortfolioService) GetProjectsByType(projectType models.ProjectType, limit int) ([]models.Project, error) {
	return s.db.ProjectRepo().FindByType(projectType, limit)
}

// GetProjectBySlug returns the project with the given slug regardless of
// status, bumping its view count by one. Listing endpoints filter on
// published status; direct lookup intentionally does not. Returns nil on
// a miss, with no write performed.
func (s *PortfolioService) GetProjectBySlug(slug string) (*models.Project, error) {
	return s.db.ProjectRepo().FindBySlugCountingView(slug)
}

// GetProjectImages returns the images of a project. An unknown project id
// yields an empty slice.
func (s *PortfolioService) GetProjectImages(projectID uint) ([]models.ProjectImage, error) {
	return s.db.ProjectRepo().FindImages(projectID)
}

// GetProjectSections returns the case-study sections of a project.
func (s *PortfolioService) GetProjectSections(projectID uint) ([]models.ProjectSection, error) {
	return s.db.ProjectRepo().FindSections(projectID)
}

// GetFeaturedGalleries returns public, featured galleries. A limit <= 0
// falls back to the default of 6.
func (s *PortfolioService) GetFeaturedGalleries(limit int) ([]models.Gallery, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.db.GalleryRepo().FindFeatured(limit)
}

// GetGalleriesByType returns public galleries of the given type. A
// limit <= 0 returns all of them.
func (s *PortfolioService) GetGalleriesByType(galleryType models.GalleryType, limit int) ([]models.Gallery, error) {
	return s.db.GalleryRepo().FindByType(galleryType, limit)
}

// GetGalleryBySlug returns the gallery with the given slug, bumping its
// view count. Visibility is enforced at listing time only. Returns nil on
// a miss.
func (s *PortfolioService) GetGalleryBySlug(slug string) (*models.Gallery, error) {
	return s.db.GalleryRepo().FindBySlugCountingView(slug)
}

// GetGalleryPhotos returns the photos of a gallery. An unknown gallery id
// yields an empty slice.
func (s *PortfolioService) GetGalleryPhotos(galleryID uint) ([]models.Photo, error) {
	return s.db.GalleryRepo().FindPhotos(galleryID)
}

// GetFeatured3DProjects returns featured 3D projects. A limit <= 0 falls
// back to the default of 6.
func (s *PortfolioService) GetFeatured3DProjects(limit int) ([]models.ThreeDProject, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.db.ThreeDRepo().FindFeatured(limit)
}

// Get3DProjectBySlug returns the 3D project with the given slug, bumping
// its view count. Returns nil on a miss.
func (s *PortfolioService) Get3DProjectBySlug(slug string) (*models.ThreeDProject, error) {
	return s.db.ThreeDRepo().FindBySlugCountingView(slug)
}

// Get3DProjectRenders returns the renders of a 3D project. An unknown
// project id yields an empty slice.
func (s *PortfolioService) Get3DProjectRenders(projectID uint) ([]models.ThreeDRender, error) {
	return s.db.ThreeDRepo().FindRenders(projectID)
}

// CreateContactMessage validates and persists a contact-form submission.
// The message always starts in status "new"; the caller-supplied IP and
// user agent are stored verbatim.
func (s *PortfolioService) CreateContactMessage(input models.ContactMessageCreate, ipAddress, userAgent string) (*models.ContactMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	message := models.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.MessageStatusNew,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.ContactMessageRepo().Add(&message); err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("messageID", message.ID).
		Str("subject", message.Subject).
		Msg("contact message received")

	return &message, nil
}

// GetRecentMessages returns the newest contact messages first. A
// limit <= 0 falls back to the default of 10.
func (s *PortfolioService) GetRecentMessages(limit int) ([]models.ContactMessage, error) {
	if limit <= 0 {
		limit = DefaultRecentMessagesLimit
	}
	return s.db.ContactMessageRepo().FindRecent(limit)
}

// UpdateProject merges the non-nil fields of update into the project and
// refreshes its updated timestamp. Returns nil when the id is unknown.
func (s *PortfolioService) UpdateProject(id uint, update models.ProjectUpdate) (*models.Project, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	project, err := s.db.ProjectRepo().FindByID(id)
	if err != nil || project == nil {
		return nil, err
	}

	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.DetailedDescription != nil {
		project.DetailedDescription = *update.DetailedDescription
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.ThumbnailURL != nil {
		project.ThumbnailURL = *update.ThumbnailURL
	}
	if update.CoverImageURL != nil {
		project.CoverImageURL = *update.CoverImageURL
	}
	if update.Featured != nil {
		project.Featured = *update.Featured
	}
	if update.Tags != nil {
		project.Tags = update.Tags
	}
	if update.Technologies != nil {
		project.Technologies = update.Technologies
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.db.ProjectRepo().Save(project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateGallery merges the non-nil fields of update into the gallery and
// refreshes its updated timestamp. Returns nil when the id is unknown.
func (s *PortfolioService) UpdateGallery(id uint, update models.GalleryUpdate) (*models.Gallery, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	gallery, err := s.db.GalleryRepo().FindByID(id)
	if err != nil || gallery == nil {
		return nil, err
	}

	if update.Title != nil {
		gallery.Title = *update.Title
	}
	if update.Description != nil {
		gallery.Description = *update.Description
	}
	if update.CoverImageURL != nil {
		gallery.CoverImageURL = *update.CoverImageURL
	}
	if update.Featured != nil {
		gallery.Featured = *update.Featured
	}
	if update.IsPublic != nil {
		gallery.IsPublic = *update.IsPublic
	}
	gallery.UpdatedAt = time.Now().UTC()

	if err := s.db.GalleryRepo().Save(gallery); err != nil {
		return nil, err
	}
	return gallery, nil
}

// UpdateSiteConfig merges the non-nil fields of update into the site
// configuration. Returns nil when the store is unseeded.
func (s *PortfolioService) UpdateSiteConfig(update models.SiteConfigUpdate) (*models.SiteConfig, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	config, err := s.db.SiteConfigRepo().First()
	if err != nil || config == nil {
		return nil, err
	}

	if update.SiteTitle != nil {
		config.SiteTitle = *update.SiteTitle
	}
	if update.SiteDescription != nil {
		config.SiteDescription = *update.SiteDescription
	}
	if update.OwnerName != nil {
		config.OwnerName = *update.OwnerName
	}
	if update.HeroTitle != nil {
		config.HeroTitle = *update.HeroTitle
	}
	if update.HeroSubtitle != nil {
		config.HeroSubtitle = *update.HeroSubtitle
	}
	if update.HeroImageURL != nil {
		config.HeroImageURL = *update.HeroImageURL
	}
	if update.AboutText != nil {
		config.AboutText = *update.AboutText
	}
	if update.AboutImageURL != nil {
		config.AboutImageURL = *update.AboutImageURL
	}
	if update.ContactEmail != nil {
		config.ContactEmail = *update.ContactEmail
	}
	if update.Phone != nil {
		config.Phone = *update.Phone
	}
	if update.Address != nil {
		config.Address = *update.Address
	}
	if update.SocialLinks != nil {
		config.SocialLinks = update.SocialLinks
	}
	if update.ThemeColors != nil {
		config.ThemeColors = update.ThemeColors
	}
	if update.SEOKeywords != nil {
		config.SEOKeywords = update.SEOKeywords
	}
	if update.GoogleAnalyticsID != nil {
		config.GoogleAnalyticsID = *update.GoogleAnalyticsID
	}
	config.UpdatedAt = time.Now().UTC()

	if err := s.db.SiteConfigRepo().Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// UpdateContactMessage merges the non-nil fields of update into a contact
// message. Returns nil when the id is unknown.
func (s *PortfolioService) UpdateContactMessage(id uint, update models.ContactMessageUpdate) (*models.ContactMessage, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	message, err := s.db.ContactMessageRepo().FindByID(id)
	if err != nil || message == nil {
		return nil, err
	}

	if update.Status != nil {
		message.Status = *update.Status
	}
	if update.RepliedAt != nil {
		message.RepliedAt = update.RepliedAt
	}

	if err := s.db.ContactMessageRepo().Save(message); err != nil {
		return nil, err
	}
	return message, nil
}
