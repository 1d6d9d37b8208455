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
	TestimonialCacheExpiry = 24 * time.Hour

	TestimonialFilterAll      = "all"
	TestimonialFilterActive   = "active"
	TestimonialFilterInactive = "inactive"
)

type TestimonialRepository struct {
	cache *cache.Cache
}

func NewTestimonialRepository(cache *cache.Cache) *TestimonialRepository {
	return &TestimonialRepository{cache: cache}
}

func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	release, err := acquireLock(ctx, fmt.Sprintf("testimonial_lock:%s", testimonial.Name))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Create(testimonial).Error; err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return r.cache.DeleteAll(ctx, "testimonials_cache*")
}

// GetAll fetches testimonials under a store-level filter: "all", "active" or
// "inactive". Newest first.
func (r *TestimonialRepository) GetAll(ctx context.Context, filter string) ([]models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getListCacheKey(filter)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var testimonials []models.Testimonial
		if err := json.Unmarshal([]byte(cached), &testimonials); err == nil {
			return testimonials, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get testimonials from cache: %v", err)
	}

	query := database.DB.Order("created_at DESC")
	switch filter {
	case TestimonialFilterActive:
		query = query.Where("is_active = ?", true)
	case TestimonialFilterInactive:
		query = query.Where("is_active = ?", false)
	}

	var testimonials []models.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}

	testimonialsJSON, err := json.Marshal(testimonials)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal testimonials: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, testimonialsJSON, TestimonialCacheExpiry); err != nil {
		log.Printf("Failed to set testimonials in cache: %v", err)
	}

	return testimonials, nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var testimonial models.Testimonial
	err := database.DB.First(&testimonial, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return &testimonial, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	release, err := acquireLock(ctx, fmt.Sprintf("testimonial_lock:%d", testimonial.ID))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Save(testimonial).Error; err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return r.cache.DeleteAll(ctx, "testimonials_cache*")
}

// SetActive flips the public visibility flag and stamps updated_at.
func (r *TestimonialRepository) SetActive(ctx context.Context, id uint, active bool) error {
	release, err := acquireLock(ctx, fmt.Sprintf("testimonial_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	result := database.DB.Model(&models.Testimonial{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to update testimonial visibility: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.cache.DeleteAll(ctx, "testimonials_cache*")
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uint) error {
	release, err := acquireLock(ctx, fmt.Sprintf("testimonial_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return r.cache.DeleteAll(ctx, "testimonials_cache*")
}

func (r *TestimonialRepository) getListCacheKey(filter string) string {
	if filter == "" {
		filter = TestimonialFilterAll
	}
	return fmt.Sprintf("testimonials_cache:%s", filter)
}
