package database

import (
	"errors"

	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

// listOrder is the ordering contract for every featured/by-type listing:
// manual sort order first, newest first among ties.
const listOrder = "sort_order DESC, created_at DESC"

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindFeatured returns published, featured projects in listing order.
func (r *ProjectRepo) FindFeatured(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("status = ? AND featured = ?", models.ProjectStatusPublished, true).
		Order(listOrder).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindByType returns published projects of the given type in listing
// order. A limit <= 0 means no truncation.
func (r *ProjectRepo) FindByType(projectType models.ProjectType, limit int) ([]models.Project, error) {
	query := r.db.
		Where("status = ? AND project_type = ?", models.ProjectStatusPublished, projectType).
		Order(listOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var projects []models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// FindBySlugCountingView looks a project up by slug regardless of status
// and, on a hit, bumps its view count by one within the same transactional
// scope. Returns nil on a miss with no write performed. The bump is a
// read-modify-write of the loaded value; a concurrent lookup of the same
// slug may lose one increment.
func (r *ProjectRepo) FindBySlugCountingView(slug string) (*models.Project, error) {
	var project models.Project
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

// FindImages returns the images of a project; an unknown project id
// yields an empty slice, not an error.
func (r *ProjectRepo) FindImages(projectID uint) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).Find(&images).Error
	return images, err
}

// FindSections returns the case-study sections of a project.
func (r *ProjectRepo) FindSections(projectID uint) ([]models.ProjectSection, error) {
	var sections []models.ProjectSection
	err := r.db.Where("project_id = ?", projectID).Find(&sections).Error
	return sections, err
}

// FindByID returns a project by id, or nil when it does not exist.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Save persists all fields of an existing project
func (r *ProjectRepo) Save(project *models.Project) error {
	return r.db.Save(project).Error
}
