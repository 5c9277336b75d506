package models

import "time"

// ContactMessage is a visitor inquiry submitted through the contact form.
type ContactMessage struct {
	ID        uint          `json:"id" db:"id" gorm:"primaryKey"`
	Name      string        `json:"name" db:"name" gorm:"size:100;not null"`
	Email     string        `json:"email" db:"email" gorm:"size:255;not null"`
	Subject   string        `json:"subject" db:"subject" gorm:"size:200;not null"`
	Message   string        `json:"message" db:"message" gorm:"size:2000;not null"`
	Status    MessageStatus `json:"status" db:"status" gorm:"size:50;not null;default:'new'"`
	IPAddress string        `json:"ipAddress" db:"ip_address" gorm:"size:45"`
	UserAgent string        `json:"userAgent" db:"user_agent" gorm:"size:500"`
	RepliedAt *time.Time    `json:"repliedAt,omitempty" db:"replied_at"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
