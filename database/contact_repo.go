package database

import (
	"errors"

	"github.com/asmith-studio/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// FindRecent returns the newest messages first, truncated to limit.
func (r *ContactMessageRepo) FindRecent(limit int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

// FindByID returns a contact message by id, or nil when it does not exist.
func (r *ContactMessageRepo) FindByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Save persists all fields of an existing contact message
func (r *ContactMessageRepo) Save(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}
