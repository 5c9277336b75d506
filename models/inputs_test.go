package models

import (
	"strings"
	"testing"

	"github.com/asmith-studio/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageCreateValidate(t *testing.T) {
	valid := ContactMessageCreate{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "Project Inquiry",
		Message: "I'd like to talk about a project.",
	}

	tests := []struct {
		name    string
		mutate  func(*ContactMessageCreate)
		wantErr func(error) bool
		field   string
	}{
		{name: "valid", mutate: func(c *ContactMessageCreate) {}},
		{
			name:    "missing name",
			mutate:  func(c *ContactMessageCreate) { c.Name = "" },
			wantErr: errs.IsMissingRequiredFieldError,
			field:   "name",
		},
		{
			name:    "blank subject",
			mutate:  func(c *ContactMessageCreate) { c.Subject = "   " },
			wantErr: errs.IsMissingRequiredFieldError,
			field:   "subject",
		},
		{
			name:    "name too long",
			mutate:  func(c *ContactMessageCreate) { c.Name = strings.Repeat("x", 101) },
			wantErr: errs.IsFieldTooLongError,
			field:   "name",
		},
		{
			name:    "message too long",
			mutate:  func(c *ContactMessageCreate) { c.Message = strings.Repeat("x", 2001) },
			wantErr: errs.IsFieldTooLongError,
			field:   "message",
		},
		{
			name:    "email without at sign",
			mutate:  func(c *ContactMessageCreate) { c.Email = "not-an-email" },
			wantErr: errs.IsInvalidFieldError,
			field:   "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			err := input.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, tt.wantErr(err))

			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}
}

func TestProjectCreateValidate(t *testing.T) {
	valid := ProjectCreate{
		Title:       "EcoShop Mobile App",
		Slug:        "ecoshop-mobile-app",
		ProjectType: ProjectTypeUIUX,
		Status:      ProjectStatusPublished,
		OwnerID:     1,
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.ProjectType = "interpretive_dance"
	err := badType.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))

	badStatus := valid
	badStatus.Status = "retired"
	err = badStatus.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))

	noOwner := valid
	noOwner.OwnerID = 0
	err = noOwner.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestGalleryCreateValidate(t *testing.T) {
	valid := GalleryCreate{
		Title:       "Urban Landscapes",
		Slug:        "urban-landscapes",
		GalleryType: GalleryTypePortfolio,
		OwnerID:     1,
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.GalleryType = "slideshow"
	err := badType.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, ProjectTypeUIUX.Valid())
	assert.True(t, ProjectType("3d_design").Valid())
	assert.False(t, ProjectType("video").Valid())

	assert.True(t, ProjectStatusArchived.Valid())
	assert.False(t, ProjectStatus("").Valid())

	assert.True(t, GalleryTypeExhibition.Valid())
	assert.False(t, GalleryType("street").Valid())

	assert.True(t, MessageStatusReplied.Valid())
	assert.False(t, MessageStatus("pending").Valid())
}
