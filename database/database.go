package database

import (
	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	ownerRepo      *OwnerRepo
	projectRepo    *ProjectRepo
	galleryRepo    *GalleryRepo
	threeDRepo     *ThreeDRepo
	contactRepo    *ContactMessageRepo
	siteConfigRepo *SiteConfigRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		ownerRepo:      NewOwnerRepo(db),
		projectRepo:    NewProjectRepo(db),
		galleryRepo:    NewGalleryRepo(db),
		threeDRepo:     NewThreeDRepo(db),
		contactRepo:    NewContactMessageRepo(db),
		siteConfigRepo: NewSiteConfigRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) OwnerRepo() *OwnerRepo {
	return d.ownerRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) GalleryRepo() *GalleryRepo {
	return d.galleryRepo
}

func (d Database) ThreeDRepo() *ThreeDRepo {
	return d.threeDRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactRepo
}

func (d Database) SiteConfigRepo() *SiteConfigRepo {
	return d.siteConfigRepo
}

// Migrate creates or updates the schema for every persisted entity.
func (d Database) Migrate() error {
	return d.ownerRepo.db.AutoMigrate(
		&models.Owner{},
		&models.Project{},
		&models.ProjectImage{},
		&models.ProjectSection{},
		&models.Gallery{},
		&models.Photo{},
		&models.ThreeDProject{},
		&models.ThreeDRender{},
		&models.ContactMessage{},
		&models.SiteConfig{},
	)
}
