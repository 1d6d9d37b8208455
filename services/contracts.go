package services

import (
	"MediPlus/models"
	"MediPlus/repositories"
	"context"
)

// Store contracts consumed by the services. The repositories satisfy them; the
// tests substitute func-field mocks.

type DoctorStore interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id uint) error
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetAll(ctx context.Context, filter string) ([]models.Appointment, error)
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context, filter string) ([]models.Contact, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type TestimonialStore interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetAll(ctx context.Context, filter string) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

var (
	_ DoctorStore      = (*repositories.DoctorRepository)(nil)
	_ AppointmentStore = (*repositories.AppointmentRepository)(nil)
	_ ContactStore     = (*repositories.ContactRepository)(nil)
	_ TestimonialStore = (*repositories.TestimonialRepository)(nil)
)
