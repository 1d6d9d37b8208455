package services

import (
	"MediPlus/models"
	"MediPlus/utils"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ContactStats is the derived projection recomputed on every fetch.
type ContactStats struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	Read     int `json:"read"`
	Replied  int `json:"replied"`
	Archived int `json:"archived"`
}

// ContactService handles public contact submissions and the administrative
// contact lifecycle.
type ContactService struct {
	store ContactStore
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{store: store}
}

// Submit persists a new contact message. Always created unread.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	if err := utils.ValidateContact(req); err != nil {
		return nil, utils.ValidationError("Veuillez remplir tous les champs obligatoires", err)
	}

	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Message: strings.TrimSpace(req.Message),
		Status:  models.ContactUnread,
	}

	if err := s.store.Create(ctx, contact); err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors de l'envoi du message", err)
	}
	return contact, nil
}

// List applies the store-level filter, then the client-side text search, and
// recomputes stats over the store-filtered set.
func (s *ContactService) List(ctx context.Context, filter, search string) ([]models.Contact, ContactStats, error) {
	contacts, err := s.store.GetAll(ctx, filter)
	if err != nil {
		return nil, ContactStats{}, utils.ClassifyStoreError("Erreur lors du chargement des contacts", err)
	}

	stats := ComputeContactStats(contacts)
	return SearchContacts(contacts, search), stats, nil
}

// ViewDetails returns the contact and, as a side effect of the read itself,
// transitions it from unread to read. An already-read contact is returned
// unchanged: no duplicate transition on repeated views.
func (s *ContactService) ViewDetails(ctx context.Context, id uint) (*models.Contact, error) {
	contact, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement du contact", err)
	}
	if contact == nil {
		return nil, utils.NotFoundError("Contact introuvable")
	}

	if contact.Status == models.ContactUnread {
		if err := s.store.UpdateStatus(ctx, id, models.ContactRead); err != nil {
			return nil, utils.ClassifyStoreError("Erreur lors de la mise à jour du statut", err)
		}
		contact.Status = models.ContactRead
	}
	return contact, nil
}

// SetStatus is the explicit admin-driven transition, distinct from the
// auto-transition performed by ViewDetails.
func (s *ContactService) SetStatus(ctx context.Context, id uint, status string) error {
	if !models.IsValidContactStatus(status) {
		return utils.ValidationError("Statut de contact invalide", nil)
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Contact introuvable")
		}
		return utils.ClassifyStoreError("Erreur lors de la mise à jour du statut", err)
	}
	return nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return utils.ClassifyStoreError("Erreur lors de la suppression du contact", err)
	}
	return nil
}

// SearchContacts applies the case-insensitive free-text search across name,
// email, phone and message. An empty search matches everything.
func SearchContacts(contacts []models.Contact, search string) []models.Contact {
	if search == "" {
		return contacts
	}

	searchLower := strings.ToLower(search)
	matched := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		phone := ""
		if c.Phone != nil {
			phone = strings.ToLower(*c.Phone)
		}
		if strings.Contains(strings.ToLower(c.Name), searchLower) ||
			strings.Contains(strings.ToLower(c.Email), searchLower) ||
			strings.Contains(phone, searchLower) ||
			strings.Contains(strings.ToLower(c.Message), searchLower) {
			matched = append(matched, c)
		}
	}
	return matched
}

// ComputeContactStats recomputes the per-status counts over the given list.
func ComputeContactStats(contacts []models.Contact) ContactStats {
	stats := ContactStats{Total: len(contacts)}
	for _, c := range contacts {
		switch c.Status {
		case models.ContactUnread:
			stats.Unread++
		case models.ContactRead:
			stats.Read++
		case models.ContactReplied:
			stats.Replied++
		case models.ContactArchived:
			stats.Archived++
		}
	}
	return stats
}
