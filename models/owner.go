package models

import "time"

// Owner is the single operator of the portfolio site.
type Owner struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name       string    `json:"name" db:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" db:"email" gorm:"size:255;not null;unique"`
	Bio        string    `json:"bio" db:"bio" gorm:"size:2000"`
	Profession string    `json:"profession" db:"profession" gorm:"size:100"`
	Location   string    `json:"location" db:"location" gorm:"size:100"`
	Website    string    `json:"website" db:"website" gorm:"size:255"`
	Linkedin   string    `json:"linkedin" db:"linkedin" gorm:"size:255"`
	Instagram  string    `json:"instagram" db:"instagram" gorm:"size:255"`
	Behance    string    `json:"behance" db:"behance" gorm:"size:255"`
	Dribbble   string    `json:"dribbble" db:"dribbble" gorm:"size:255"`
	IsActive   bool      `json:"isActive" db:"is_active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Projects  []Project `json:"projects,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	Galleries []Gallery `json:"galleries,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}

func (Owner) TableName() string {
	return "users"
}
