package repositories

import (
	"MediPlus/cache"
	"MediPlus/database"
	"MediPlus/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	ContactCacheExpiry = 24 * time.Hour

	ContactFilterAll = "all"
)

type ContactRepository struct {
	cache *cache.Cache
}

func NewContactRepository(cache *cache.Cache) *ContactRepository {
	return &ContactRepository{cache: cache}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	release, err := acquireLock(ctx, fmt.Sprintf("contact_lock:%s", contact.Email))
	if err != nil {
		return err
	}
	defer release()

	if !models.IsValidContactStatus(contact.Status) {
		return errors.New("invalid status value")
	}

	if err := database.DB.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return r.cache.DeleteAll(ctx, "contacts_cache*")
}

// GetAll fetches contacts under a store-level filter: "all" or a status value.
// Newest first.
func (r *ContactRepository) GetAll(ctx context.Context, filter string) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getListCacheKey(filter)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var contacts []models.Contact
		if err := json.Unmarshal([]byte(cached), &contacts); err == nil {
			return contacts, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get contacts from cache: %v", err)
	}

	query := database.DB.Order("created_at DESC")
	if filter != "" && filter != ContactFilterAll {
		query = query.Where("status = ?", filter)
	}

	var contacts []models.Contact
	if err := query.Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}

	contactsJSON, err := json.Marshal(contacts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contacts: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, contactsJSON, ContactCacheExpiry); err != nil {
		log.Printf("Failed to set contacts in cache: %v", err)
	}

	return contacts, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var contact models.Contact
	err := database.DB.First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &contact, nil
}

// UpdateStatus stamps the new status and updated_at on the contact row.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("contact_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	if !models.IsValidContactStatus(status) {
		return errors.New("invalid status value")
	}

	result := database.DB.Model(&models.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to update contact status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.cache.DeleteAll(ctx, "contacts_cache*")
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	release, err := acquireLock(ctx, fmt.Sprintf("contact_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Delete(&models.Contact{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return r.cache.DeleteAll(ctx, "contacts_cache*")
}

func (r *ContactRepository) getListCacheKey(filter string) string {
	if filter == "" {
		filter = ContactFilterAll
	}
	return fmt.Sprintf("contacts_cache:%s", filter)
}
