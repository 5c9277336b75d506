package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asmith-studio/portfolio-backend/database"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/asmith-studio/portfolio-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires a router against a seeded in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	d := database.New(db)
	require.NoError(t, d.Migrate())
	require.NoError(t, services.NewSeedService(d).CreateSampleData())

	return newRouter(services.NewPortfolioService(d))
}

func TestGetSiteConfigEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site-config", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var config models.SiteConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &config))
	assert.Equal(t, "Alexandra Smith - Designer & Photographer", config.SiteTitle)
}

func TestGetProjectBySlugEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/project/ecoshop-mobile-app", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, "ecoshop-mobile-app", project.Slug)
	assert.Equal(t, 1, project.ViewCount)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/project/nonexistent-project", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProjectsByTypeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects?type=ui_ux", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var collection ProjectCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	assert.Equal(t, 2, collection.Total)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects?type=interpretive_dance", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateContactMessageEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{
		"name": "John Doe",
		"email": "john@example.com",
		"subject": "Project Inquiry",
		"message": "I'd like to discuss a redesign."
	}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var message models.ContactMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &message))
	assert.NotZero(t, message.ID)
	assert.Equal(t, models.MessageStatusNew, message.Status)
	assert.Equal(t, "203.0.113.9", message.IPAddress)
	assert.Equal(t, "Mozilla/5.0", message.UserAgent)
}

func TestCreateContactMessageEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/contact",
		strings.NewReader(`{"email": "john@example.com", "subject": "Hi", "message": "Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "name", response["field"])
}

func TestGetRecentMessagesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 3; i++ {
		body := strings.NewReader(fmt.Sprintf(
			`{"name": "User %d", "email": "user%d@example.com", "subject": "Hi", "message": "Hello"}`, i, i))
		req := httptest.NewRequest(http.MethodPost, "/contact", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages?limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var messages []models.ContactMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "User 2", messages[0].Name)
	assert.Equal(t, "User 1", messages[1].Name)
}

func TestUpdateProjectEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Resolve the seeded project id through its slug first.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/project/ecoshop-mobile-app", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/project/%d", project.ID),
		strings.NewReader(`{"title": "EcoShop App v2"}`))
	req.Header.Set("Content-Type", "application/json")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "EcoShop App v2", updated.Title)
	assert.Equal(t, project.Slug, updated.Slug)
}

func TestGet3DProjectEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/3d-projects/featured", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var collection ThreeDProjectCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	assert.Equal(t, 2, collection.Total)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/3d-project/modern-living-room", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var project models.ThreeDProject
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, 1, project.ViewCount)
}
