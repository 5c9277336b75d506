package models

import (
	"strings"
	"time"

	"github.com/asmith-studio/portfolio-backend/errs"
)

// requireText checks a required bounded-length text field.
func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewMissingRequiredFieldError(field)
	}
	if len(value) > max {
		return errs.NewFieldTooLongError(field, max)
	}
	return nil
}

// boundText checks an optional bounded-length text field.
func boundText(field, value string, max int) error {
	if len(value) > max {
		return errs.NewFieldTooLongError(field, max)
	}
	return nil
}

// ContactMessageCreate is the contact-form submission payload.
type ContactMessageCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c ContactMessageCreate) Validate() error {
	if err := requireText("name", c.Name, 100); err != nil {
		return err
	}
	if err := requireText("email", c.Email, 255); err != nil {
		return err
	}
	if !strings.Contains(c.Email, "@") {
		return errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	if err := requireText("subject", c.Subject, 200); err != nil {
		return err
	}
	return requireText("message", c.Message, 2000)
}

// ContactMessageUpdate carries a partial update for a contact message.
// Nil fields are left untouched.
type ContactMessageUpdate struct {
	Status    *MessageStatus `json:"status,omitempty"`
	RepliedAt *time.Time     `json:"repliedAt,omitempty"`
}

func (u ContactMessageUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return errs.NewInvalidFieldError("status", "unknown message status")
	}
	return nil
}

// ProjectCreate is the payload for adding a project.
type ProjectCreate struct {
	Title               string        `json:"title"`
	Slug                string        `json:"slug"`
	Description         string        `json:"description"`
	DetailedDescription string        `json:"detailedDescription"`
	ProjectType         ProjectType   `json:"projectType"`
	Status              ProjectStatus `json:"status"`
	ThumbnailURL        string        `json:"thumbnailUrl"`
	CoverImageURL       string        `json:"coverImageUrl"`
	ClientName          string        `json:"clientName"`
	ProjectURL          string        `json:"projectUrl"`
	Tags                []string      `json:"tags"`
	Technologies        []string      `json:"technologies"`
	ColorPalette        []string      `json:"colorPalette"`
	ProjectDuration     string        `json:"projectDuration"`
	CompletionDate      *time.Time    `json:"completionDate,omitempty"`
	Featured            bool          `json:"featured"`
	OwnerID             uint          `json:"ownerId"`
}

func (c ProjectCreate) Validate() error {
	if err := requireText("title", c.Title, 200); err != nil {
		return err
	}
	if err := requireText("slug", c.Slug, 200); err != nil {
		return err
	}
	if err := boundText("description", c.Description, 1000); err != nil {
		return err
	}
	if err := boundText("detailedDescription", c.DetailedDescription, 5000); err != nil {
		return err
	}
	if !c.ProjectType.Valid() {
		return errs.NewInvalidFieldError("projectType", "unknown project type")
	}
	if !c.Status.Valid() {
		return errs.NewInvalidFieldError("status", "unknown project status")
	}
	if c.OwnerID == 0 {
		return errs.NewMissingRequiredFieldError("ownerId")
	}
	return nil
}

// ProjectUpdate carries a partial update for a project. Nil fields are
// left untouched.
type ProjectUpdate struct {
	Title               *string        `json:"title,omitempty"`
	Description         *string        `json:"description,omitempty"`
	DetailedDescription *string        `json:"detailedDescription,omitempty"`
	Status              *ProjectStatus `json:"status,omitempty"`
	ThumbnailURL        *string        `json:"thumbnailUrl,omitempty"`
	CoverImageURL       *string        `json:"coverImageUrl,omitempty"`
	Featured            *bool          `json:"featured,omitempty"`
	Tags                []string       `json:"tags,omitempty"`
	Technologies        []string       `json:"technologies,omitempty"`
}

func (u ProjectUpdate) Validate() error {
	if u.Title != nil {
		if err := requireText("title", *u.Title, 200); err != nil {
			return err
		}
	}
	if u.Description != nil {
		if err := boundText("description", *u.Description, 1000); err != nil {
			return err
		}
	}
	if u.DetailedDescription != nil {
		if err := boundText("detailedDescription", *u.DetailedDescription, 5000); err != nil {
			return err
		}
	}
	if u.Status != nil && !u.Status.Valid() {
		return errs.NewInvalidFieldError("status", "unknown project status")
	}
	return nil
}

// GalleryCreate is the payload for adding a gallery.
type GalleryCreate struct {
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Description   string      `json:"description"`
	GalleryType   GalleryType `json:"galleryType"`
	CoverImageURL string      `json:"coverImageUrl"`
	Location      string      `json:"location"`
	ShootDate     *time.Time  `json:"shootDate,omitempty"`
	Featured      bool        `json:"featured"`
	IsPublic      bool        `json:"isPublic"`
	OwnerID       uint        `json:"ownerId"`
}

func (c GalleryCreate) Validate() error {
	if err := requireText("title", c.Title, 200); err != nil {
		return err
	}
	if err := requireText("slug", c.Slug, 200); err != nil {
		return err
	}
	if err := boundText("description", c.Description, 1000); err != nil {
		return err
	}
	if !c.GalleryType.Valid() {
		return errs.NewInvalidFieldError("galleryType", "unknown gallery type")
	}
	if c.OwnerID == 0 {
		return errs.NewMissingRequiredFieldError("ownerId")
	}
	return nil
}

// GalleryUpdate carries a partial update for a gallery.
type GalleryUpdate struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
	Featured      *bool   `json:"featured,omitempty"`
	IsPublic      *bool   `json:"isPublic,omitempty"`
}

func (u GalleryUpdate) Validate() error {
	if u.Title != nil {
		if err := requireText("title", *u.Title, 200); err != nil {
			return err
		}
	}
	if u.Description != nil {
		if err := boundText("description", *u.Description, 1000); err != nil {
			return err
		}
	}
	return nil
}

// PhotoCreate is the payload for adding a photo to a gallery.
type PhotoCreate struct {
	GalleryID    uint       `json:"galleryId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	AltText      string     `json:"altText"`
	Width        *int       `json:"width,omitempty"`
	Height       *int       `json:"height,omitempty"`
	CameraModel  string     `json:"cameraModel"`
	Lens         string     `json:"lens"`
	FocalLength  string     `json:"focalLength"`
	Aperture     string     `json:"aperture"`
	ShutterSpeed string     `json:"shutterSpeed"`
	ISO          string     `json:"iso"`
	TakenAt      *time.Time `json:"takenAt,omitempty"`
	Location     string     `json:"location"`
	Tags         []string   `json:"tags"`
	Featured     bool       `json:"featured"`
}

func (c PhotoCreate) Validate() error {
	if c.GalleryID == 0 {
		return errs.NewMissingRequiredFieldError("galleryId")
	}
	if err := requireText("imageUrl", c.ImageURL, 500); err != nil {
		return err
	}
	return boundText("title", c.Title, 200)
}

// ThreeDProjectCreate is the payload for adding a 3D project.
type ThreeDProjectCreate struct {
	Title             string   `json:"title"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description"`
	SoftwareUsed      []string `json:"softwareUsed"`
	RenderEngine      string   `json:"renderEngine"`
	RenderTime        string   `json:"renderTime"`
	PolygonCount      *int     `json:"polygonCount,omitempty"`
	TextureResolution string   `json:"textureResolution"`
	FeaturedImageURL  string   `json:"featuredImageUrl"`
	ProjectType       string   `json:"projectType"`
	Style             string   `json:"style"`
	Tags              []string `json:"tags"`
	Featured          bool     `json:"featured"`
}

func (c ThreeDProjectCreate) Validate() error {
	if err := requireText("title", c.Title, 200); err != nil {
		return err
	}
	if err := requireText("slug", c.Slug, 200); err != nil {
		return err
	}
	return boundText("description", c.Description, 1000)
}

// ThreeDRenderCreate is the payload for adding a render to a 3D project.
type ThreeDRenderCreate struct {
	ProjectID      uint           `json:"projectId"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"imageUrl"`
	ThumbnailURL   string         `json:"thumbnailUrl"`
	AltText        string         `json:"altText"`
	Width          *int           `json:"width,omitempty"`
	Height         *int           `json:"height,omitempty"`
	RenderSettings map[string]any `json:"renderSettings"`
	IsFinal        bool           `json:"isFinal"`
}

func (c ThreeDRenderCreate) Validate() error {
	if c.ProjectID == 0 {
		return errs.NewMissingRequiredFieldError("projectId")
	}
	return requireText("imageUrl", c.ImageURL, 500)
}

// SiteConfigUpdate carries a partial update for the site configuration.
type SiteConfigUpdate struct {
	SiteTitle         *string           `json:"siteTitle,omitempty"`
	SiteDescription   *string           `json:"siteDescription,omitempty"`
	OwnerName         *string           `json:"ownerName,omitempty"`
	HeroTitle         *string           `json:"heroTitle,omitempty"`
	HeroSubtitle      *string           `json:"heroSubtitle,omitempty"`
	HeroImageURL      *string           `json:"heroImageUrl,omitempty"`
	AboutText         *string           `json:"aboutText,omitempty"`
	AboutImageURL     *string           `json:"aboutImageUrl,omitempty"`
	ContactEmail      *string           `json:"contactEmail,omitempty"`
	Phone             *string           `json:"phone,omitempty"`
	Address           *string           `json:"address,omitempty"`
	SocialLinks       map[string]string `json:"socialLinks,omitempty"`
	ThemeColors       map[string]string `json:"themeColors,omitempty"`
	SEOKeywords       []string          `json:"seoKeywords,omitempty"`
	GoogleAnalyticsID *string           `json:"googleAnalyticsId,omitempty"`
}

func (u SiteConfigUpdate) Validate() error {
	if u.SiteTitle != nil {
		if err := requireText("siteTitle", *u.SiteTitle, 100); err != nil {
			return err
		}
	}
	if u.AboutText != nil {
		if err := boundText("aboutText", *u.AboutText, 2000); err != nil {
			return err
		}
	}
	if u.ContactEmail != nil {
		if err := boundText("contactEmail", *u.ContactEmail, 255); err != nil {
			return err
		}
	}
	return nil
}
