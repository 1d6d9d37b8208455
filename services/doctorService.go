package services

import (
	"MediPlus/models"
	"MediPlus/storage"
	"MediPlus/utils"
	"context"
	"io"
	"log"
)

// PhotoUpload carries a binary photo attached to a create or update.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// DoctorService implements the administrative doctor lifecycle, including the
// photo attachment protocol against the media store.
type DoctorService struct {
	store DoctorStore
	media storage.MediaStore
}

func NewDoctorService(store DoctorStore, media storage.MediaStore) *DoctorService {
	return &DoctorService{store: store, media: media}
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement des médecins", err)
	}
	return doctors, nil
}

// Create adds a doctor. A photo is mandatory: either an uploaded file or a
// pre-existing URL. The check runs locally, before any store call.
func (s *DoctorService) Create(ctx context.Context, input models.DoctorInput, photo *PhotoUpload) (*models.Doctor, error) {
	if err := utils.ValidateDoctorInput(input); err != nil {
		return nil, utils.ValidationError("Veuillez remplir tous les champs obligatoires", err)
	}
	if photo == nil && input.PhotoURL == "" {
		return nil, utils.ValidationError("Une photo est requise pour l'ajout d'un nouveau médecin", nil)
	}

	photoURL := input.PhotoURL
	if photo != nil {
		uploaded, err := s.media.Upload(ctx, storage.DoctorPhotoPrefix, photo.Filename, photo.Content)
		if err != nil {
			return nil, utils.ClassifyStoreError("Erreur lors du téléchargement de la photo", err)
		}
		photoURL = uploaded
	}

	doctor := &models.Doctor{
		Name:       input.Name,
		Specialty:  input.Specialty,
		Experience: input.Experience,
		Hours:      input.Hours,
		Phone:      input.Phone,
		Email:      input.Email,
		Bio:        input.Bio,
		PhotoURL:   &photoURL,
	}

	if err := s.store.Create(ctx, doctor); err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors de l'ajout du médecin", err)
	}
	return doctor, nil
}

// Update edits a doctor in place. When a new photo is supplied the ordering is
// upload, then row update, then best-effort removal of the previous blob, so a
// failed upload leaves the record untouched.
func (s *DoctorService) Update(ctx context.Context, id uint, input models.DoctorInput, photo *PhotoUpload) (*models.Doctor, error) {
	if err := utils.ValidateDoctorInput(input); err != nil {
		return nil, utils.ValidationError("Veuillez remplir tous les champs obligatoires", err)
	}

	doctor, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement du médecin", err)
	}
	if doctor == nil {
		return nil, utils.NotFoundError("Médecin introuvable")
	}

	previousURL := ""
	if doctor.PhotoURL != nil {
		previousURL = *doctor.PhotoURL
	}

	photoURL := input.PhotoURL
	if photo != nil {
		uploaded, err := s.media.Upload(ctx, storage.DoctorPhotoPrefix, photo.Filename, photo.Content)
		if err != nil {
			return nil, utils.ClassifyStoreError("Erreur lors du téléchargement de la photo", err)
		}
		photoURL = uploaded
	}

	doctor.Name = input.Name
	doctor.Specialty = input.Specialty
	doctor.Experience = input.Experience
	doctor.Hours = input.Hours
	doctor.Phone = input.Phone
	doctor.Email = input.Email
	doctor.Bio = input.Bio
	if photoURL != "" {
		doctor.PhotoURL = &photoURL
	} else {
		doctor.PhotoURL = nil
	}

	if err := s.store.Update(ctx, doctor); err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors de la modification du médecin", err)
	}

	if photo != nil && previousURL != "" && previousURL != photoURL {
		if err := s.media.Remove(ctx, storage.DoctorPhotoPrefix, previousURL); err != nil {
			log.Printf("Failed to remove previous doctor photo %s: %v", previousURL, err)
		}
	}
	return doctor, nil
}

// Delete removes the doctor's stored blob (best-effort) and then the row.
// Appointments referencing the doctor keep their rows with a nulled reference.
func (s *DoctorService) Delete(ctx context.Context, id uint) error {
	doctor, err := s.store.GetByID(ctx, id)
	if err != nil {
		return utils.ClassifyStoreError("Erreur lors du chargement du médecin", err)
	}
	if doctor == nil {
		return utils.NotFoundError("Médecin introuvable")
	}

	if doctor.PhotoURL != nil {
		if err := s.media.Remove(ctx, storage.DoctorPhotoPrefix, *doctor.PhotoURL); err != nil {
			log.Printf("Failed to remove doctor photo %s: %v", *doctor.PhotoURL, err)
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return utils.ClassifyStoreError("Erreur lors de la suppression du médecin", err)
	}
	return nil
}
