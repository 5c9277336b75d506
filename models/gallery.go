package models

import "time"

// Gallery is a photography collection.
type Gallery struct {
	ID            uint        `json:"id" db:"id" gorm:"primaryKey"`
	Title         string      `json:"title" db:"title" gorm:"size:200;not null"`
	Slug          string      `json:"slug" db:"slug" gorm:"size:200;not null;unique"`
	Description   string      `json:"description" db:"description" gorm:"size:1000"`
	GalleryType   GalleryType `json:"galleryType" db:"gallery_type" gorm:"size:50;not null;default:'portfolio'"`
	CoverImageURL string      `json:"coverImageUrl" db:"cover_image_url" gorm:"size:500"`
	Location      string      `json:"location" db:"location" gorm:"size:100"`
	ShootDate     *time.Time  `json:"shootDate,omitempty" db:"shoot_date"`
	Featured      bool        `json:"featured" db:"featured" gorm:"not null;default:false"`
	IsPublic      bool        `json:"isPublic" db:"is_public" gorm:"not null;default:true"`
	SortOrder     int         `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	ViewCount     int         `json:"viewCount" db:"view_count" gorm:"not null;default:0"`
	OwnerID       uint        `json:"ownerId" db:"owner_id" gorm:"not null;index"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Photos []Photo `json:"photos,omitempty" gorm:"foreignKey:GalleryID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Gallery) TableName() string {
	return "galleries"
}

// Photo is a single image in a gallery, with optional capture metadata.
type Photo struct {
	ID           uint       `json:"id" db:"id" gorm:"primaryKey"`
	GalleryID    uint       `json:"galleryId" db:"gallery_id" gorm:"not null;index"`
	Title        string     `json:"title" db:"title" gorm:"size:200"`
	Description  string     `json:"description" db:"description" gorm:"size:1000"`
	ImageURL     string     `json:"imageUrl" db:"image_url" gorm:"size:500;not null"`
	ThumbnailURL string     `json:"thumbnailUrl" db:"thumbnail_url" gorm:"size:500"`
	AltText      string     `json:"altText" db:"alt_text" gorm:"size:200"`
	Width        *int       `json:"width,omitempty" db:"width"`
	Height       *int       `json:"height,omitempty" db:"height"`
	FileSize     *int       `json:"fileSize,omitempty" db:"file_size"`
	CameraModel  string     `json:"cameraModel" db:"camera_model" gorm:"size:100"`
	Lens         string     `json:"lens" db:"lens" gorm:"size:100"`
	FocalLength  string     `json:"focalLength" db:"focal_length" gorm:"size:20"`
	Aperture     string     `json:"aperture" db:"aperture" gorm:"size:10"`
	ShutterSpeed string     `json:"shutterSpeed" db:"shutter_speed" gorm:"size:20"`
	ISO          string     `json:"iso" db:"iso" gorm:"size:10"`
	TakenAt      *time.Time `json:"takenAt,omitempty" db:"taken_at"`
	Location     string     `json:"location" db:"location" gorm:"size:100"`
	Tags         []string   `json:"tags" db:"tags" gorm:"type:jsonb;serializer:json"`
	Featured     bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder    int        `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (Photo) TableName() string {
	return "photos"
}
