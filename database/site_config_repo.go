package database

import (
	"errors"

	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

type SiteConfigRepo struct {
	db *gorm.DB
}

func NewSiteConfigRepo(db *gorm.DB) *SiteConfigRepo {
	return &SiteConfigRepo{db}
}

// First returns the site configuration row, or nil when the store is
// unseeded.
func (r *SiteConfigRepo) First() (*models.SiteConfig, error) {
	var config models.SiteConfig
	err := r.db.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Add inserts the site configuration row. The fixed primary key keeps the
// table a singleton.
func (r *SiteConfigRepo) Add(config *models.SiteConfig) error {
	config.ID = models.SiteConfigID
	return r.db.Create(config).Error
}

// Save persists all fields of the site configuration
func (r *SiteConfigRepo) Save(config *models.SiteConfig) error {
	return r.db.Save(config).Error
}
