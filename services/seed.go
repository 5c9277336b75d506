package services

import (
	"fmt"

	"github.com/asmith-studio/portfolio-backend/database"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SeedService populates a fresh store with demonstration content.
type SeedService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewSeedService(db database.Database) *SeedService {
	return &SeedService{
		db:     db,
		logger: log.With().Str("serviceName", "seedService").Logger(),
	}
}

// CreateSampleData inserts the demo owner, site config, projects,
// galleries and 3D projects. The presence of any owner row is the sole
// idempotence guard: a store that has an owner but lost other tables
// out-of-band is not backfilled.
func (s *SeedService) CreateSampleData() error {
	seeded, err := s.db.OwnerRepo().Exists()
	if err != nil {
		return fmt.Errorf("checking for existing owner: %w", err)
	}
	if seeded {
		s.logger.Debug().Msg("sample data already present, skipping seed")
		return nil
	}

	owner := models.Owner{
		Name:       "Alexandra Smith",
		Email:      "alex@portfolio.com",
		Bio:        "I'm a passionate UI/UX designer and photographer with over 5 years of experience creating meaningful digital experiences and capturing life's beautiful moments.",
		Profession: "UI/UX Designer & Photographer",
		Location:   "San Francisco, CA",
		Website:    "https://alexandra-portfolio.com",
		Linkedin:   "https://linkedin.com/in/alexandrasmith",
		Instagram:  "https://instagram.com/alex_designs",
		Behance:    "https://behance.net/alexandrasmith",
		Dribbble:   "https://dribbble.com/alexsmith",
		IsActive:   true,
	}
	if err := s.db.OwnerRepo().Add(&owner); err != nil {
		return fmt.Errorf("seeding owner: %w", err)
	}

	siteConfig := models.SiteConfig{
		SiteTitle:       "Alexandra Smith - Designer & Photographer",
		SiteDescription: "Portfolio showcasing UI/UX design work, photography, and 3D renders",
		OwnerName:       "Alexandra Smith",
		HeroTitle:       "Creating Digital Experiences & Capturing Moments",
		HeroSubtitle:    "UI/UX Designer & Photographer passionate about storytelling through design and photography",
		HeroImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=600&fit=crop",
		AboutText:       "I believe great design should be both beautiful and functional. With a background in both digital design and photography, I bring a unique perspective to every project.",
		AboutImageURL:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop",
		ContactEmail:    "hello@alexandra-portfolio.com",
		SocialLinks: map[string]string{
			"linkedin":  "https://linkedin.com/in/alexandrasmith",
			"instagram": "https://instagram.com/alex_designs",
			"behance":   "https://behance.net/alexandrasmith",
			"dribbble":  "https://dribbble.com/alexsmith",
		},
		ThemeColors: map[string]string{
			"primary":   "#667eea",
			"secondary": "#764ba2",
			"accent":    "#f093fb",
		},
	}
	if err := s.db.SiteConfigRepo().Add(&siteConfig); err != nil {
		return fmt.Errorf("seeding site config: %w", err)
	}

	projects := []models.Project{
		{
			Title:               "EcoShop Mobile App",
			Slug:                "ecoshop-mobile-app",
			Description:         "A sustainable shopping app that helps users make eco-friendly choices",
			DetailedDescription: "EcoShop is a mobile application designed to promote sustainable shopping habits. The app features product sustainability ratings, carbon footprint tracking, and personalized recommendations for eco-friendly alternatives.",
			ProjectType:         models.ProjectTypeUIUX,
			Status:              models.ProjectStatusPublished,
			ThumbnailURL:        "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=400&h=300&fit=crop",
			CoverImageURL:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=800&h=600&fit=crop",
			ClientName:          "EcoTech Solutions",
			Tags:                []string{"Mobile App", "UI/UX", "Sustainability", "E-commerce"},
			Technologies:        []string{"Figma", "Sketch", "Principle", "InVision"},
			ColorPalette:        []string{"#22C55E", "#16A34A", "#FFFFFF", "#F3F4F6"},
			ProjectDuration:     "3 months",
			Featured:            true,
			SortOrder:           1,
			OwnerID:             owner.ID,
		},
		{
			Title:               "MindfulSpace Dashboard",
			Slug:                "mindfulspace-dashboard",
			Description:         "A wellness platform dashboard for meditation and mindfulness tracking",
			DetailedDescription: "MindfulSpace is a comprehensive wellness platform that helps users track their meditation progress, set mindfulness goals, and connect with guided sessions. The dashboard provides clear analytics and a calming user experience.",
			ProjectType:         models.ProjectTypeUIUX,
			Status:              models.ProjectStatusPublished,
			ThumbnailURL:        "https://images.unsplash.com/photo-1544717297-fa95b6ee9643?w=400&h=300&fit=crop",
			CoverImageURL:       "https://images.unsplash.com/photo-1544717297-fa95b6ee9643?w=800&h=600&fit=crop",
			ClientName:          "Wellness Tech Inc",
			Tags:                []string{"Web App", "Dashboard", "Wellness", "Analytics"},
			Technologies:        []string{"Figma", "React", "Chart.js", "Framer Motion"},
			ColorPalette:        []string{"#8B5CF6", "#A78BFA", "#F3F4F6", "#FFFFFF"},
			ProjectDuration:     "2 months",
			Featured:            true,
			SortOrder:           2,
			OwnerID:             owner.ID,
		},
	}
	for i := range projects {
		if err := s.db.ProjectRepo().Add(&projects[i]); err != nil {
			return fmt.Errorf("seeding project %q: %w", projects[i].Slug, err)
		}
	}

	galleries := []models.Gallery{
		{
			Title:         "Urban Landscapes",
			Slug:          "urban-landscapes",
			Description:   "Capturing the beauty and energy of city life through architectural photography",
			GalleryType:   models.GalleryTypePortfolio,
			CoverImageURL: "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800&h=600&fit=crop",
			Location:      "San Francisco, CA",
			Featured:      true,
			IsPublic:      true,
			SortOrder:     1,
			OwnerID:       owner.ID,
		},
		{
			Title:         "Portrait Sessions",
			Slug:          "portrait-sessions",
			Description:   "Professional portraits that capture personality and emotion",
			GalleryType:   models.GalleryTypeClient,
			CoverImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=600&fit=crop",
			Location:      "Studio & On-location",
			Featured:      true,
			IsPublic:      true,
			SortOrder:     2,
			OwnerID:       owner.ID,
		},
	}
	for i := range galleries {
		if err := s.db.GalleryRepo().Add(&galleries[i]); err != nil {
			return fmt.Errorf("seeding gallery %q: %w", galleries[i].Slug, err)
		}
	}

	polygons := func(n int) *int { return &n }
	threeDProjects := []models.ThreeDProject{
		{
			Title:             "Modern Living Room",
			Slug:              "modern-living-room",
			Description:       "Architectural visualization of a contemporary living space",
			SoftwareUsed:      []string{"Blender", "Cycles"},
			RenderEngine:      "Cycles",
			RenderTime:        "45 minutes",
			PolygonCount:      polygons(250000),
			TextureResolution: "4K",
			FeaturedImageURL:  "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
			ProjectType:       "Interior Design",
			Style:             "Photorealistic",
			Tags:              []string{"Architecture", "Interior", "Visualization"},
			Featured:          true,
			SortOrder:         1,
		},
		{
			Title:             "Abstract Composition",
			Slug:              "abstract-composition",
			Description:       "Experimental 3D artwork exploring form and color",
			SoftwareUsed:      []string{"Cinema 4D", "Octane"},
			RenderEngine:      "Octane",
			RenderTime:        "20 minutes",
			PolygonCount:      polygons(150000),
			TextureResolution: "2K",
			FeaturedImageURL:  "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=800&h=600&fit=crop",
			ProjectType:       "Abstract Art",
			Style:             "Stylized",
			Tags:              []string{"Abstract", "Art", "Experimental"},
			Featured:          true,
			SortOrder:         2,
		},
	}
	for i := range threeDProjects {
		if err := s.db.ThreeDRepo().Add(&threeDProjects[i]); err != nil {
			return fmt.Errorf("seeding 3d project %q: %w", threeDProjects[i].Slug, err)
		}
	}

	s.logger.Info().
		Int("projects", len(projects)).
		Int("galleries", len(galleries)).
		Int("threeDProjects", len(threeDProjects)).
		Msg("sample data seeded")

	return nil
}
