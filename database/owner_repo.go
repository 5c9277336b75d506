package database

import (
	"errors"

	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

type OwnerRepo struct {
	db *gorm.DB
}

func NewOwnerRepo(db *gorm.DB) *OwnerRepo {
	return &OwnerRepo{db}
}

// FindActive returns the first active owner, or nil when none exists.
func (r *OwnerRepo) FindActive() (*models.Owner, error) {
	var owner models.Owner
	err := r.db.Where("is_active = ?", true).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// Exists reports whether any owner row is present. The seed routine uses
// this as its sole idempotence guard.
func (r *OwnerRepo) Exists() (bool, error) {
	var count int64
	if err := r.db.Model(&models.Owner{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts a new owner into the database
func (r *OwnerRepo) Add(owner *models.Owner) error {
	return r.db.Create(owner).Error
}
