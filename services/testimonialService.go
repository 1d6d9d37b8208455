package services

import (
	"MediPlus/models"
	"MediPlus/repositories"
	"MediPlus/storage"
	"MediPlus/utils"
	"context"
	"log"
	"strings"
)

// TestimonialService implements the administrative testimonial lifecycle.
// Unlike doctors, the photo is optional.
type TestimonialService struct {
	store TestimonialStore
	media storage.MediaStore
}

func NewTestimonialService(store TestimonialStore, media storage.MediaStore) *TestimonialService {
	return &TestimonialService{store: store, media: media}
}

// List applies the store-level filter then the client-side text search.
func (s *TestimonialService) List(ctx context.Context, filter, search string) ([]models.Testimonial, error) {
	testimonials, err := s.store.GetAll(ctx, filter)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement des avis", err)
	}
	return SearchTestimonials(testimonials, search), nil
}

// ListActive returns the publicly visible testimonials.
func (s *TestimonialService) ListActive(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.store.GetAll(ctx, repositories.TestimonialFilterActive)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement des avis", err)
	}
	return testimonials, nil
}

// Create adds a testimonial. A rating outside 1..5 is rejected, never clamped.
func (s *TestimonialService) Create(ctx context.Context, input models.TestimonialInput, photo *PhotoUpload) (*models.Testimonial, error) {
	if err := utils.ValidateTestimonialInput(input); err != nil {
		return nil, utils.ValidationError("Veuillez remplir le nom et le contenu", err)
	}

	role := input.Role
	if role == "" {
		role = "Patient"
	}

	var photoURL *string
	if photo != nil {
		uploaded, err := s.media.Upload(ctx, storage.TestimonialPhotoPrefix, photo.Filename, photo.Content)
		if err != nil {
			return nil, utils.ClassifyStoreError("Erreur lors du téléchargement de la photo", err)
		}
		photoURL = &uploaded
	} else if input.PhotoURL != "" {
		photoURL = &input.PhotoURL
	}

	testimonial := &models.Testimonial{
		Name:     input.Name,
		Role:     role,
		Content:  input.Content,
		Rating:   input.Rating,
		IsActive: input.IsActive,
		PhotoURL: photoURL,
	}

	if err := s.store.Create(ctx, testimonial); err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors de l'ajout de l'avis", err)
	}
	return testimonial, nil
}

// Update edits a testimonial in place, with the same upload-then-write-then-
// remove ordering as doctors.
func (s *TestimonialService) Update(ctx context.Context, id uint, input models.TestimonialInput, photo *PhotoUpload) (*models.Testimonial, error) {
	if err := utils.ValidateTestimonialInput(input); err != nil {
		return nil, utils.ValidationError("Veuillez remplir le nom et le contenu", err)
	}

	testimonial, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement de l'avis", err)
	}
	if testimonial == nil {
		return nil, utils.NotFoundError("Avis introuvable")
	}

	previousURL := ""
	if testimonial.PhotoURL != nil {
		previousURL = *testimonial.PhotoURL
	}

	photoURL := input.PhotoURL
	if photo != nil {
		uploaded, err := s.media.Upload(ctx, storage.TestimonialPhotoPrefix, photo.Filename, photo.Content)
		if err != nil {
			return nil, utils.ClassifyStoreError("Erreur lors du téléchargement de la photo", err)
		}
		photoURL = uploaded
	}

	testimonial.Name = input.Name
	if input.Role != "" {
		testimonial.Role = input.Role
	}
	testimonial.Content = input.Content
	testimonial.Rating = input.Rating
	testimonial.IsActive = input.IsActive
	if photoURL != "" {
		testimonial.PhotoURL = &photoURL
	} else {
		testimonial.PhotoURL = nil
	}

	if err := s.store.Update(ctx, testimonial); err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors de la modification de l'avis", err)
	}

	if photo != nil && previousURL != "" && previousURL != photoURL {
		if err := s.media.Remove(ctx, storage.TestimonialPhotoPrefix, previousURL); err != nil {
			log.Printf("Failed to remove previous testimonial photo %s: %v", previousURL, err)
		}
	}
	return testimonial, nil
}

// ToggleActive flips the soft-hide flag and returns the new value. Toggling
// twice restores the original visibility.
func (s *TestimonialService) ToggleActive(ctx context.Context, id uint) (bool, error) {
	testimonial, err := s.store.GetByID(ctx, id)
	if err != nil {
		return false, utils.ClassifyStoreError("Erreur lors du chargement de l'avis", err)
	}
	if testimonial == nil {
		return false, utils.NotFoundError("Avis introuvable")
	}

	next := !testimonial.IsActive
	if err := s.store.SetActive(ctx, id, next); err != nil {
		return false, utils.ClassifyStoreError("Erreur lors de la mise à jour", err)
	}
	return next, nil
}

// Delete removes the stored blob (best-effort) and then the row.
func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	testimonial, err := s.store.GetByID(ctx, id)
	if err != nil {
		return utils.ClassifyStoreError("Erreur lors du chargement de l'avis", err)
	}
	if testimonial == nil {
		return utils.NotFoundError("Avis introuvable")
	}

	if testimonial.PhotoURL != nil {
		if err := s.media.Remove(ctx, storage.TestimonialPhotoPrefix, *testimonial.PhotoURL); err != nil {
			log.Printf("Failed to remove testimonial photo %s: %v", *testimonial.PhotoURL, err)
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return utils.ClassifyStoreError("Erreur lors de la suppression de l'avis", err)
	}
	return nil
}

// SearchTestimonials applies the case-insensitive free-text search across
// name, role and content. An empty search matches everything.
func SearchTestimonials(testimonials []models.Testimonial, search string) []models.Testimonial {
	if search == "" {
		return testimonials
	}

	searchLower := strings.ToLower(search)
	matched := make([]models.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		if strings.Contains(strings.ToLower(t.Name), searchLower) ||
			strings.Contains(strings.ToLower(t.Role), searchLower) ||
			strings.Contains(strings.ToLower(t.Content), searchLower) {
			matched = append(matched, t)
		}
	}
	return matched
}
