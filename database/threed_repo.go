package database

import (
	"errors"

	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

type ThreeDRepo struct {
	db *gorm.DB
}

func NewThreeDRepo(db *gorm.DB) *ThreeDRepo {
	return &ThreeDRepo{db}
}

// FindFeatured returns featured 3D projects in listing order. 3D projects
// carry no draft/published lifecycle, so featured is the only filter.
func (r *ThreeDRepo) FindFeatured(limit int) ([]models.ThreeDProject, error) {
	var projects []models.ThreeDProject
	err := r.db.
		Where("featured = ?", true).
		Order(listOrder).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindBySlugCountingView looks a 3D project up by slug and bumps its view
// count within the same transactional scope. Returns nil on a miss with
// no write performed.
func (r *ThreeDRepo) FindBySlugCountingView(slug string) (*models.ThreeDProject, error) {
	var project models.ThreeDProject
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).First(&project).Error; err != nil {
			return err
		}
		project.ViewCount++
		return tx.Model(&project).UpdateColumn("view_count", project.ViewCount).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindRenders returns the renders of a 3D project; an unknown project id
// yields an empty slice, not an error.
func (r *ThreeDRepo) FindRenders(projectID uint) ([]models.ThreeDRender, error) {
	var renders []models.ThreeDRender
	err := r.db.Where("project_id = ?", projectID).Find(&renders).Error
	return renders, err
}

// Add inserts a new 3D project into the database
func (r *ThreeDRepo) Add(project *models.ThreeDProject) error {
	return r.db.Create(project).Error
}
