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
	AppointmentCacheExpiry = 24 * time.Hour

	// Store-level appointment filters; any status value is also accepted.
	AppointmentFilterAll   = "all"
	AppointmentFilterToday = "today"
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%s_%s", appointment.PatientEmail, appointment.AppointmentDate))
	if err != nil {
		return err
	}
	defer release()

	if !models.IsValidAppointmentStatus(appointment.Status) {
		return errors.New("invalid status value")
	}

	if err := database.DB.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointments_cache*")
}

// GetAll fetches appointments under a store-level filter: "all", "today", or a
// status value. Ordered by date then time ascending, with the doctor reference
// preloaded for the joined name/specialty view.
func (r *AppointmentRepository) GetAll(ctx context.Context, filter string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getListCacheKey(filter)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	query := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, specialty")
		}).
		Order("appointment_date ASC").
		Order("appointment_time ASC")

	switch filter {
	case AppointmentFilterAll, "":
	case AppointmentFilterToday:
		today := time.Now().Format("2006-01-02")
		query = query.Where("appointment_date = ?", today)
	default:
		query = query.Where("status = ?", filter)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, specialty")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// UpdateStatus stamps the new status and updated_at on the appointment row.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	if !models.IsValidAppointmentStatus(status) {
		return errors.New("invalid status value")
	}

	result := database.DB.Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to update appointment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.cache.DeleteAll(ctx, "appointments_cache*")
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	release, err := acquireLock(ctx, fmt.Sprintf("appointment_lock:%d", id))
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointments_cache*")
}

func (r *AppointmentRepository) getListCacheKey(filter string) string {
	if filter == "" {
		filter = AppointmentFilterAll
	}
	return fmt.Sprintf("appointments_cache:%s", filter)
}
