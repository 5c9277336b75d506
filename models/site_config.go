package models

import "time"

// SiteConfigID is the fixed primary key of the single site_config row.
// Pinning the id keeps "the first row" and "the only row" the same thing.
const SiteConfigID uint = 1

// SiteConfig holds site-wide display text and contact details.
type SiteConfig struct {
	ID                uint              `json:"id" db:"id" gorm:"primaryKey"`
	SiteTitle         string            `json:"siteTitle" db:"site_title" gorm:"size:100;not null;default:'Portfolio'"`
	SiteDescription   string            `json:"siteDescription" db:"site_description" gorm:"size:500"`
	OwnerName         string            `json:"ownerName" db:"owner_name" gorm:"size:100"`
	HeroTitle         string            `json:"heroTitle" db:"hero_title" gorm:"size:200"`
	HeroSubtitle      string            `json:"heroSubtitle" db:"hero_subtitle" gorm:"size:300"`
	HeroImageURL      string            `json:"heroImageUrl" db:"hero_image_url" gorm:"size:500"`
	AboutText         string            `json:"aboutText" db:"about_text" gorm:"size:2000"`
	AboutImageURL     string            `json:"aboutImageUrl" db:"about_image_url" gorm:"size:500"`
	ContactEmail      string            `json:"contactEmail" db:"contact_email" gorm:"size:255"`
	Phone             string            `json:"phone" db:"phone" gorm:"size:20"`
	Address           string            `json:"address" db:"address" gorm:"size:200"`
	SocialLinks       map[string]string `json:"socialLinks" db:"social_links" gorm:"type:jsonb;serializer:json"`
	ThemeColors       map[string]string `json:"themeColors" db:"theme_colors" gorm:"type:jsonb;serializer:json"`
	SEOKeywords       []string          `json:"seoKeywords" db:"seo_keywords" gorm:"type:jsonb;serializer:json"`
	GoogleAnalyticsID string            `json:"googleAnalyticsId" db:"google_analytics_id" gorm:"size:50"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}
