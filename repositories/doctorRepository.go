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
	DoctorCacheExpiry = 7 * 24 * time.Hour
)

type DoctorRepository struct {
	cache *cache.Cache
}

func NewDoctorRepository(cache *cache.Cache) *DoctorRepository {
	return &DoctorRepository{cache: cache}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	release, err := acquireLock(ctx, fmt.Sprintf("doctor_lock:%s", doctor.Email))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return r.cache.DeleteAll(ctx, "doctors_cache*")
}

// GetAll returns every doctor ordered by name.
func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "doctors_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			return doctors, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get doctors from cache: %v", err)
	}

	var doctors []models.Doctor
	if err := database.DB.Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to get doctors: %w", err)
	}

	doctorsJSON, err := json.Marshal(doctors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal doctors: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, doctorsJSON, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctors in cache: %v", err)
	}

	return doctors, nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	err := database.DB.First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	release, err := acquireLock(ctx, fmt.Sprintf("doctor_lock:%d", doctor.ID))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Save(doctor).Error; err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return r.cache.DeleteAll(ctx, "doctors_cache*")
}

// Delete removes the doctor row. Appointments referencing it keep their rows,
// the foreign key is nulled out by the store.
func (r *DoctorRepository) Delete(ctx context.Context, id uint) error {
	release, err := acquireLock(ctx, fmt.Sprintf("doctor_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Delete(&models.Doctor{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "doctors_cache*"); err != nil {
		return err
	}
	// Appointment rows now carry a nulled doctor reference.
	return r.cache.DeleteAll(ctx, "appointments_cache*")
}
