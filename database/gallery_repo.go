package database

import (
	"errors"

	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

type GalleryRepo struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) *GalleryRepo {
	return &GalleryRepo{db}
}

// FindFeatured returns public, featured galleries in listing order.
func (r *GalleryRepo) FindFeatured(limit int) ([]models.Gallery, error) {
	var galleries []models.Gallery
	err := r.db.
		Where("is_public = ? AND featured = ?", true, true).
		Order(listOrder).
		Limit(limit).
		Find(&galleries).Error
	return galleries, err
}

// FindByType returns public galleries of the given type in listing order.
// A limit <= 0 means no truncation.
func (r *GalleryRepo) FindByType(galleryType models.GalleryType, limit int) ([]models.Gallery, error) {
	query := r.db.
		Where("is_public = ? AND gallery_type = ?", true, galleryType).
		Order(listOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var galleries []models.Gallery
	err := query.Find(&galleries).Error
	return galleries, err
}

// FindBySlugCountingView looks a gallery up by slug and bumps its view
// count within the same transactional scope. Visibility is not checked
// here; only the listing queries filter on is_public. Returns nil on a
// miss with no write performed.
func (r *GalleryRepo) FindBySlugCountingView(slug string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).First(&gallery).Error; err != nil {
			return err
		}
		gallery.ViewCount++
		return tx.Model(&gallery).UpdateColumn("view_count", gallery.ViewCount).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

// FindPhotos returns the photos of a gallery; an unknown gallery id
// yields an empty slice, not an error.
func (r *GalleryRepo) FindPhotos(galleryID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("gallery_id = ?", galleryID).Find(&photos).Error
	return photos, err
}

// FindByID returns a gallery by id, or nil when it does not exist.
func (r *GalleryRepo) FindByID(id uint) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.First(&gallery, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

// Add inserts a new gallery into the database
func (r *GalleryRepo) Add(gallery *models.Gallery) error {
	return r.db.Create(gallery).Error
}

// Save persists all fields of an existing gallery
func (r *GalleryRepo) Save(gallery *models.Gallery) error {
	return r.db.Save(gallery).Error
}
