package models

// ProjectType classifies a project by discipline.
type ProjectType string

const (
	ProjectTypeUIUX        ProjectType = "ui_ux"
	ProjectTypePhotography ProjectType = "photography"
	ProjectTypeThreeD      ProjectType = "3d_design"
	ProjectTypeOther       ProjectType = "other"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeUIUX, ProjectTypePhotography, ProjectTypeThreeD, ProjectTypeOther:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle state of a project. Only published
// projects appear in listings; slug lookup ignores status.
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusPublished ProjectStatus = "published"
	ProjectStatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusPublished, ProjectStatusArchived:
		return true
	}
	return false
}

// GalleryType classifies a photo gallery.
type GalleryType string

const (
	GalleryTypePortfolio  GalleryType = "portfolio"
	GalleryTypePersonal   GalleryType = "personal"
	GalleryTypeClient     GalleryType = "client"
	GalleryTypeExhibition GalleryType = "exhibition"
)

func (t GalleryType) Valid() bool {
	switch t {
	case GalleryTypePortfolio, GalleryTypePersonal, GalleryTypeClient, GalleryTypeExhibition:
		return true
	}
	return false
}

// MessageStatus tracks the handling state of a contact message.
type MessageStatus string

const (
	MessageStatusNew      MessageStatus = "new"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusArchived MessageStatus = "archived"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied, MessageStatusArchived:
		return true
	}
	return false
}
