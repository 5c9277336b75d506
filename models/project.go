package models

import "time"

// Project represents a case study with its metadata.
type Project struct {
	ID                  uint          `json:"id" db:"id" gorm:"primaryKey"`
	Title               string        `json:"title" db:"title" gorm:"size:200;not null"`
	Slug                string        `json:"slug" db:"slug" gorm:"size:200;not null;unique"`
	Description         string        `json:"description" db:"description" gorm:"size:1000"`
	DetailedDescription string        `json:"detailedDescription" db:"detailed_description" gorm:"size:5000"`
	ProjectType         ProjectType   `json:"projectType" db:"project_type" gorm:"size:50;not null;default:'other'"`
	Status              ProjectStatus `json:"status" db:"status" gorm:"size:50;not null;default:'draft'"`
	ThumbnailURL        string        `json:"thumbnailUrl" db:"thumbnail_url" gorm:"size:500"`
	CoverImageURL       string        `json:"coverImageUrl" db:"cover_image_url" gorm:"size:500"`
	ClientName          string        `json:"clientName" db:"client_name" gorm:"size:100"`
	ProjectURL          string        `json:"projectUrl" db:"project_url" gorm:"size:500"`
	GithubURL           string        `json:"githubUrl" db:"github_url" gorm:"size:500"`
	BehanceURL          string        `json:"behanceUrl" db:"behance_url" gorm:"size:500"`
	DribbbleURL         string        `json:"dribbbleUrl" db:"dribbble_url" gorm:"size:500"`
	Tags                []string      `json:"tags" db:"tags" gorm:"type:jsonb;serializer:json"`
	Technologies        []string      `json:"technologies" db:"technologies" gorm:"type:jsonb;serializer:json"`
	ColorPalette        []string      `json:"colorPalette" db:"color_palette" gorm:"type:jsonb;serializer:json"`
	ProjectDuration     string        `json:"projectDuration" db:"project_duration" gorm:"size:50"`
	CompletionDate      *time.Time    `json:"completionDate,omitempty" db:"completion_date"`
	Featured            bool          `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder           int           `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	ViewCount           int           `json:"viewCount" db:"view_count" gorm:"not null;default:0"`
	LikeCount           int           `json:"likeCount" db:"like_count" gorm:"not null;default:0"`
	OwnerID             uint          `json:"ownerId" db:"owner_id" gorm:"not null;index"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Images   []ProjectImage   `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Sections []ProjectSection `json:"sections,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectImage is a showcase image attached to a project.
type ProjectImage struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID  uint      `json:"projectId" db:"project_id" gorm:"not null;index"`
	ImageURL   string    `json:"imageUrl" db:"image_url" gorm:"size:500;not null"`
	AltText    string    `json:"altText" db:"alt_text" gorm:"size:200"`
	Caption    string    `json:"caption" db:"caption" gorm:"size:500"`
	Width      *int      `json:"width,omitempty" db:"width"`
	Height     *int      `json:"height,omitempty" db:"height"`
	FileSize   *int      `json:"fileSize,omitempty" db:"file_size"`
	SortOrder  int       `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	IsFeatured bool      `json:"isFeatured" db:"is_featured" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}

// ProjectSection is one block of a detailed case study.
type ProjectSection struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"projectId" db:"project_id" gorm:"not null;index"`
	Title       string    `json:"title" db:"title" gorm:"size:200;not null"`
	Content     string    `json:"content" db:"content" gorm:"size:5000;not null"`
	SectionType string    `json:"sectionType" db:"section_type" gorm:"size:50;not null;default:'text'"` // text, image, video, code
	ImageURL    string    `json:"imageUrl" db:"image_url" gorm:"size:500"`
	SortOrder   int       `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (ProjectSection) TableName() string {
	return "project_sections"
}
