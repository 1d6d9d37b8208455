package services

import (
	"MediPlus/models"
	"MediPlus/utils"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestimonialInput() models.TestimonialInput {
	return models.TestimonialInput{
		Name:     "Marie Dupont",
		Content:  "Un accueil formidable et une équipe à l'écoute.",
		Rating:   5,
		IsActive: true,
	}
}

func TestTestimonialCreateRejectsOutOfRangeRating(t *testing.T) {
	svc := NewTestimonialService(&MockTestimonialStore{}, &MockMediaStore{})

	for _, rating := range []int{0, 6, -1} {
		input := validTestimonialInput()
		input.Rating = rating
		_, err := svc.Create(context.Background(), input, nil)
		assert.Error(t, err, "rating %d should be rejected", rating)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	}
}

func TestTestimonialCreateDefaultsRoleToPatient(t *testing.T) {
	var created *models.Testimonial
	store := &MockTestimonialStore{
		CreateFunc: func(ctx context.Context, testimonial *models.Testimonial) error {
			created = testimonial
			return nil
		},
	}
	svc := NewTestimonialService(store, &MockMediaStore{})

	_, err := svc.Create(context.Background(), validTestimonialInput(), nil)
	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.Equal(t, "Patient", created.Role)
		assert.Nil(t, created.PhotoURL)
	}
}

func TestTestimonialCreateUploadsOptionalPhoto(t *testing.T) {
	media := &MockMediaStore{
		UploadFunc: func(ctx context.Context, prefix, originalFilename string, file io.Reader) (string, error) {
			return "https://cdn.example.com/testimonials/abc.jpg", nil
		},
	}
	var created *models.Testimonial
	store := &MockTestimonialStore{
		CreateFunc: func(ctx context.Context, testimonial *models.Testimonial) error {
			created = testimonial
			return nil
		},
	}
	svc := NewTestimonialService(store, media)

	photo := &PhotoUpload{Filename: "photo.jpg", Content: strings.NewReader("jpegdata")}
	_, err := svc.Create(context.Background(), validTestimonialInput(), photo)
	assert.NoError(t, err)
	if assert.NotNil(t, created) && assert.NotNil(t, created.PhotoURL) {
		assert.Equal(t, "https://cdn.example.com/testimonials/abc.jpg", *created.PhotoURL)
	}
}

func TestTestimonialUpdateReplacesPhotoAndRemovesOldBlob(t *testing.T) {
	oldURL := "https://cdn.example.com/testimonials/old.jpg"
	media := &MockMediaStore{
		UploadFunc: func(ctx context.Context, prefix, originalFilename string, file io.Reader) (string, error) {
			return "https://cdn.example.com/testimonials/new.jpg", nil
		},
	}
	store := &MockTestimonialStore{
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Testimonial, error) {
			return &models.Testimonial{ID: 1, Name: "Marie", Content: "Super", Rating: 5, PhotoURL: &oldURL}, nil
		},
	}
	svc := NewTestimonialService(store, media)

	photo := &PhotoUpload{Filename: "new.jpg", Content: strings.NewReader("jpegdata")}
	updated, err := svc.Update(context.Background(), 1, validTestimonialInput(), photo)
	assert.NoError(t, err)
	if assert.NotNil(t, updated.PhotoURL) {
		assert.Equal(t, "https://cdn.example.com/testimonials/new.jpg", *updated.PhotoURL)
	}
	if assert.Len(t, media.RemovedURLs, 1) {
		assert.Equal(t, oldURL, media.RemovedURLs[0])
	}
}

func TestTestimonialUpdateWithoutPhotoKeepsBlob(t *testing.T) {
	oldURL := "https://cdn.example.com/testimonials/old.jpg"
	media := &MockMediaStore{}
	store := &MockTestimonialStore{
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Testimonial, error) {
			return &models.Testimonial{ID: 1, Name: "Marie", Content: "Super", Rating: 5, PhotoURL: &oldURL}, nil
		},
	}
	svc := NewTestimonialService(store, media)

	input := validTestimonialInput()
	input.PhotoURL = oldURL
	_, err := svc.Update(context.Background(), 1, input, nil)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), media.RemoveCallCount)
}

func TestTestimonialToggleActiveFlipsAndReturnsNext(t *testing.T) {
	active := true
	var setTo *bool
	store := &MockTestimonialStore{
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Testimonial, error) {
			return &models.Testimonial{ID: 1, Name: "Marie", Content: "Super", Rating: 5, IsActive: active}, nil
		},
		SetActiveFunc: func(ctx context.Context, id uint, next bool) error {
			setTo = &next
			active = next
			return nil
		},
	}
	svc := NewTestimonialService(store, &MockMediaStore{})

	next, err := svc.ToggleActive(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, next)
	if assert.NotNil(t, setTo) {
		assert.False(t, *setTo)
	}

	// Toggling twice restores the original visibility.
	next, err = svc.ToggleActive(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, next)
}

func TestTestimonialToggleActiveMissingRecord(t *testing.T) {
	store := &MockTestimonialStore{
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Testimonial, error) {
			return nil, nil
		},
	}
	svc := NewTestimonialService(store, &MockMediaStore{})

	_, err := svc.ToggleActive(context.Background(), 99)
	assert.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestTestimonialDeleteRemovesBlobFirst(t *testing.T) {
	url := "https://cdn.example.com/testimonials/old.jpg"
	media := &MockMediaStore{}
	store := &MockTestimonialStore{
		GetByIDFunc: func(ctx context.Context, id uint) (*models.Testimonial, error) {
			return &models.Testimonial{ID: 1, Name: "Marie", Content: "Super", Rating: 5, PhotoURL: &url}, nil
		},
	}
	svc := NewTestimonialService(store, media)

	err := svc.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), media.RemoveCallCount)
}

func TestSearchTestimonials(t *testing.T) {
	testimonials := []models.Testimonial{
		{ID: 1, Name: "Marie Dupont", Role: "Patiente", Content: "Très bon suivi"},
		{ID: 2, Name: "Paul Lefevre", Role: "Patient", Content: "Équipe attentive"},
	}

	assert.Len(t, SearchTestimonials(testimonials, "marie"), 1)
	assert.Len(t, SearchTestimonials(testimonials, "patient"), 2)
	assert.Len(t, SearchTestimonials(testimonials, "attentive"), 1)
	assert.Len(t, SearchTestimonials(testimonials, ""), 2)
}
