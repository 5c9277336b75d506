package models

import "time"

// ThreeDProject is a 3D design piece with its render metadata. Unlike
// Project there is no owner reference and no draft/published lifecycle;
// every row is listable.
type ThreeDProject struct {
	ID                uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title             string    `json:"title" db:"title" gorm:"size:200;not null"`
	Slug              string    `json:"slug" db:"slug" gorm:"size:200;not null;unique"`
	Description       string    `json:"description" db:"description" gorm:"size:1000"`
	SoftwareUsed      []string  `json:"softwareUsed" db:"software_used" gorm:"type:jsonb;serializer:json"`
	RenderEngine      string    `json:"renderEngine" db:"render_engine" gorm:"size:50"`
	RenderTime        string    `json:"renderTime" db:"render_time" gorm:"size:50"`
	PolygonCount      *int      `json:"polygonCount,omitempty" db:"polygon_count"`
	TextureResolution string    `json:"textureResolution" db:"texture_resolution" gorm:"size:50"`
	FeaturedImageURL  string    `json:"featuredImageUrl" db:"featured_image_url" gorm:"size:500"`
	ProjectType       string    `json:"projectType" db:"project_type" gorm:"size:50"` // character, environment, product, etc.
	Style             string    `json:"style" db:"style" gorm:"size:50"`             // realistic, stylized, abstract, etc.
	Tags              []string  `json:"tags" db:"tags" gorm:"type:jsonb;serializer:json"`
	Featured          bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder         int       `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	ViewCount         int       `json:"viewCount" db:"view_count" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`

	Renders []ThreeDRender `json:"renders,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ThreeDProject) TableName() string {
	return "three_d_projects"
}

// ThreeDRender is a single render belonging to a 3D project.
type ThreeDRender struct {
	ID             uint              `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID      uint              `json:"projectId" db:"project_id" gorm:"not null;index"`
	Title          string            `json:"title" db:"title" gorm:"size:200"`
	Description    string            `json:"description" db:"description" gorm:"size:500"`
	ImageURL       string            `json:"imageUrl" db:"image_url" gorm:"size:500;not null"`
	ThumbnailURL   string            `json:"thumbnailUrl" db:"thumbnail_url" gorm:"size:500"`
	AltText        string            `json:"altText" db:"alt_text" gorm:"size:200"`
	Width          *int              `json:"width,omitempty" db:"width"`
	Height         *int              `json:"height,omitempty" db:"height"`
	FileSize       *int              `json:"fileSize,omitempty" db:"file_size"`
	RenderSettings map[string]any    `json:"renderSettings" db:"render_settings" gorm:"type:jsonb;serializer:json"`
	IsFinal        bool              `json:"isFinal" db:"is_final" gorm:"not null;default:true"`
	SortOrder      int               `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (ThreeDRender) TableName() string {
	return "three_d_renders"
}
