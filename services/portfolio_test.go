package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/asmith-studio/portfolio-backend/errs"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T) *PortfolioService {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, NewSeedService(db).CreateSampleData())
	return NewPortfolioService(db)
}

func TestGetSiteConfigUnseeded(t *testing.T) {
	svc := NewPortfolioService(newTestDB(t))

	config, err := svc.GetSiteConfig()
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestGetPortfolioOwner(t *testing.T) {
	svc := seededService(t)

	owner, err := svc.GetPortfolioOwner()
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "Alexandra Smith", owner.Name)
	assert.Equal(t, "alex@portfolio.com", owner.Email)
	assert.True(t, owner.IsActive)
}

func TestGetProjectBySlugIncrementsViewCount(t *testing.T) {
	svc := seededService(t)

	first, err := svc.GetProjectBySlug("ecoshop-mobile-app")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.ViewCount)

	second, err := svc.GetProjectBySlug("ecoshop-mobile-app")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ViewCount+1, second.ViewCount)
}

func TestGetProjectBySlugMissing(t *testing.T) {
	svc := seededService(t)

	project, err := svc.GetProjectBySlug("nonexistent-project")
	require.NoError(t, err)
	assert.Nil(t, project)

	// The miss must not have written anything.
	ecoshop, err := svc.GetProjectBySlug("ecoshop-mobile-app")
	require.NoError(t, err)
	require.NotNil(t, ecoshop)
	assert.Equal(t, 1, ecoshop.ViewCount)
}

func TestGetProjectBySlugIgnoresStatus(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeedService(db).CreateSampleData())
	svc := NewPortfolioService(db)

	owner, err := db.OwnerRepo().FindActive()
	require.NoError(t, err)
	require.NoError(t, db.ProjectRepo().Add(&models.Project{
		Title:       "Unfinished Ideas",
		Slug:        "unfinished-ideas",
		ProjectType: models.ProjectTypeOther,
		Status:      models.ProjectStatusDraft,
		OwnerID:     owner.ID,
	}))

	draft, err := svc.GetProjectBySlug("unfinished-ideas")
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, models.ProjectStatusDraft, draft.Status)
	assert.Equal(t, 1, draft.ViewCount)
}

func TestGetFeaturedProjectsFilters(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeedService(db).CreateSampleData())
	svc := NewPortfolioService(db)

	owner, err := db.OwnerRepo().FindActive()
	require.NoError(t, err)

	// Neither a featured draft nor an unfeatured published project may
	// show up in the featured listing.
	require.NoError(t, db.ProjectRepo().Add(&models.Project{
		Title: "Featured Draft", Slug: "featured-draft",
		ProjectType: models.ProjectTypeUIUX, Status: models.ProjectStatusDraft,
		Featured: true, OwnerID: owner.ID,
	}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{
		Title: "Plain Published", Slug: "plain-published",
		ProjectType: models.ProjectTypeUIUX, Status: models.ProjectStatusPublished,
		Featured: false, OwnerID: owner.ID,
	}))

	projects, err := svc.GetFeaturedProjects(0)
	require.NoError(t, err)
	require.NotEmpty(t, projects)
	for _, p := range projects {
		assert.Equal(t, models.ProjectStatusPublished, p.Status)
		assert.True(t, p.Featured)
	}
}

func TestFeaturedProjectsOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db)

	owner := models.Owner{Name: "Owner", Email: "owner@example.com", IsActive: true}
	require.NoError(t, db.OwnerRepo().Add(&owner))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	add := func(slug string, sortOrder int, createdAt time.Time) {
		require.NoError(t, db.ProjectRepo().Add(&models.Project{
			Title: slug, Slug: slug,
			ProjectType: models.ProjectTypeUIUX, Status: models.ProjectStatusPublished,
			Featured: true, SortOrder: sortOrder, OwnerID: owner.ID,
			CreatedAt: createdAt, UpdatedAt: createdAt,
		}))
	}
	add("low-old", 1, base)
	add("high", 5, base)
	add("low-new", 1, base.Add(time.Hour))

	projects, err := svc.GetFeaturedProjects(0)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "high", projects[0].Slug)
	assert.Equal(t, "low-new", projects[1].Slug)
	assert.Equal(t, "low-old", projects[2].Slug)
}

func TestGetProjectsByTypeLimit(t *testing.T) {
	svc := seededService(t)

	all, err := svc.GetProjectsByType(models.ProjectTypeUIUX, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := svc.GetProjectsByType(models.ProjectTypeUIUX, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	none, err := svc.GetProjectsByType(models.ProjectTypePhotography, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetProjectImagesUnknownParent(t *testing.T) {
	svc := seededService(t)

	images, err := svc.GetProjectImages(99999)
	require.NoError(t, err)
	assert.Empty(t, images)

	sections, err := svc.GetProjectSections(99999)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestGetGalleryBySlugIncrementsAndIgnoresVisibility(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeedService(db).CreateSampleData())
	svc := NewPortfolioService(db)

	owner, err := db.OwnerRepo().FindActive()
	require.NoError(t, err)
	require.NoError(t, db.GalleryRepo().Add(&models.Gallery{
		Title: "Private Archive", Slug: "private-archive",
		GalleryType: models.GalleryTypePersonal, IsPublic: false, OwnerID: owner.ID,
	}))

	// Lookup filters only on slug; visibility applies to listings.
	gallery, err := svc.GetGalleryBySlug("private-archive")
	require.NoError(t, err)
	require.NotNil(t, gallery)
	assert.Equal(t, 1, gallery.ViewCount)

	listed, err := svc.GetGalleriesByType(models.GalleryTypePersonal, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGetFeaturedGalleries(t *testing.T) {
	svc := seededService(t)

	galleries, err := svc.GetFeaturedGalleries(0)
	require.NoError(t, err)
	require.Len(t, galleries, 2)
	for _, g := range galleries {
		assert.True(t, g.Featured)
		assert.True(t, g.IsPublic)
	}
}

func TestGetGalleryPhotosUnknownParent(t *testing.T) {
	svc := seededService(t)

	photos, err := svc.GetGalleryPhotos(99999)
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func Test3DProjectBySlugIncrementsViewCount(t *testing.T) {
	svc := seededService(t)

	first, err := svc.Get3DProjectBySlug("modern-living-room")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.ViewCount)

	second, err := svc.Get3DProjectBySlug("modern-living-room")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 2, second.ViewCount)

	missing, err := svc.Get3DProjectBySlug("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetFeatured3DProjects(t *testing.T) {
	svc := seededService(t)

	projects, err := svc.GetFeatured3DProjects(0)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.True(t, p.Featured)
	}

	renders, err := svc.Get3DProjectRenders(projects[0].ID)
	require.NoError(t, err)
	assert.Empty(t, renders)
}

func TestCreateContactMessage(t *testing.T) {
	svc := NewPortfolioService(newTestDB(t))

	message, err := svc.CreateContactMessage(models.ContactMessageCreate{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "Project Inquiry",
		Message: "I'd like to discuss a redesign of our mobile app.",
	}, "203.0.113.9", "Mozilla/5.0")
	require.NoError(t, err)
	require.NotNil(t, message)

	assert.NotZero(t, message.ID)
	assert.Equal(t, models.MessageStatusNew, message.Status)
	assert.Equal(t, "203.0.113.9", message.IPAddress)
	assert.Equal(t, "Mozilla/5.0", message.UserAgent)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestCreateContactMessageValidation(t *testing.T) {
	svc := NewPortfolioService(newTestDB(t))

	valid := models.ContactMessageCreate{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello there",
	}

	missingName := valid
	missingName.Name = ""
	_, err := svc.CreateContactMessage(missingName, "", "")
	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))

	longSubject := valid
	longSubject.Subject = string(make([]byte, 201))
	_, err = svc.CreateContactMessage(longSubject, "", "")
	require.Error(t, err)
	assert.True(t, errs.IsFieldTooLongError(err))

	// Nothing may have been persisted by the rejected submissions.
	messages, err := svc.GetRecentMessages(0)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestGetRecentMessagesOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db)

	base := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.ContactMessageRepo().Add(&models.ContactMessage{
			Name:      fmt.Sprintf("User %d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			Subject:   "Hello",
			Message:   "Message body",
			Status:    models.MessageStatusNew,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	messages, err := svc.GetRecentMessages(2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "User 2", messages[0].Name)
	assert.Equal(t, "User 1", messages[1].Name)
}

func TestUpdateProjectMergesFields(t *testing.T) {
	svc := seededService(t)

	original, err := svc.GetProjectBySlug("ecoshop-mobile-app")
	require.NoError(t, err)
	require.NotNil(t, original)

	newTitle := "EcoShop App v2"
	featured := false
	updated, err := svc.UpdateProject(original.ID, models.ProjectUpdate{
		Title:    &newTitle,
		Featured: &featured,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "EcoShop App v2", updated.Title)
	assert.False(t, updated.Featured)
	// Untouched fields survive the merge.
	assert.Equal(t, original.Description, updated.Description)
	assert.Equal(t, original.Slug, updated.Slug)
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt) || updated.UpdatedAt.Equal(original.UpdatedAt))
}

func TestUpdateProjectUnknownID(t *testing.T) {
	svc := seededService(t)

	status := models.ProjectStatusArchived
	updated, err := svc.UpdateProject(99999, models.ProjectUpdate{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateProjectInvalidStatus(t *testing.T) {
	svc := seededService(t)

	bad := models.ProjectStatus("retired")
	_, err := svc.UpdateProject(1, models.ProjectUpdate{Status: &bad})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
}

func TestUpdateGallery(t *testing.T) {
	svc := seededService(t)

	gallery, err := svc.GetGalleryBySlug("urban-landscapes")
	require.NoError(t, err)
	require.NotNil(t, gallery)

	hidden := false
	updated, err := svc.UpdateGallery(gallery.ID, models.GalleryUpdate{IsPublic: &hidden})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsPublic)

	featured, err := svc.GetFeaturedGalleries(0)
	require.NoError(t, err)
	for _, g := range featured {
		assert.NotEqual(t, gallery.ID, g.ID)
	}
}

func TestUpdateSiteConfig(t *testing.T) {
	svc := seededService(t)

	title := "Alexandra Smith - Studio"
	updated, err := svc.UpdateSiteConfig(models.SiteConfigUpdate{SiteTitle: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Alexandra Smith - Studio", updated.SiteTitle)

	reloaded, err := svc.GetSiteConfig()
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Alexandra Smith - Studio", reloaded.SiteTitle)
	// Untouched fields survive the merge.
	assert.Equal(t, "hello@alexandra-portfolio.com", reloaded.ContactEmail)
}

func TestUpdateContactMessageStatus(t *testing.T) {
	svc := seededService(t)

	message, err := svc.CreateContactMessage(models.ContactMessageCreate{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello there",
	}, "", "")
	require.NoError(t, err)

	replied := models.MessageStatusReplied
	now := time.Now().UTC()
	updated, err := svc.UpdateContactMessage(message.ID, models.ContactMessageUpdate{
		Status:    &replied,
		RepliedAt: &now,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.MessageStatusReplied, updated.Status)
	require.NotNil(t, updated.RepliedAt)
}

func TestEndToEndScenario(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewSeedService(db).CreateSampleData())
	svc := NewPortfolioService(db)

	config, err := svc.GetSiteConfig()
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "Alexandra Smith - Designer & Photographer", config.SiteTitle)

	first, err := svc.GetProjectBySlug("ecoshop-mobile-app")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.ViewCount)

	second, err := svc.GetProjectBySlug("ecoshop-mobile-app")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 2, second.ViewCount)

	missing, err := svc.GetProjectBySlug("nonexistent-project")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
