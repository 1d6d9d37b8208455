package services

import (
	"MediPlus/models"
	"MediPlus/storage"
	"context"
	"errors"
	"io"
	"sync/atomic"
)

// Func-field mocks for the store contracts. A nil func falls back to a benign
// default so each test only wires what it asserts on.

var (
	_ DoctorStore       = (*MockDoctorStore)(nil)
	_ AppointmentStore  = (*MockAppointmentStore)(nil)
	_ ContactStore      = (*MockContactStore)(nil)
	_ TestimonialStore  = (*MockTestimonialStore)(nil)
	_ storage.MediaStore = (*MockMediaStore)(nil)
)

type MockDoctorStore struct {
	CreateFunc  func(ctx context.Context, doctor *models.Doctor) error
	GetAllFunc  func(ctx context.Context) ([]models.Doctor, error)
	GetByIDFunc func(ctx context.Context, id uint) (*models.Doctor, error)
	UpdateFunc  func(ctx context.Context, doctor *models.Doctor) error
	DeleteFunc  func(ctx context.Context, id uint) error

	CreateCallCount int32
	DeleteCallCount int32
}

func (m *MockDoctorStore) Create(ctx context.Context, doctor *models.Doctor) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorStore) GetAll(ctx context.Context) ([]models.Doctor, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDoctorStore) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockDoctorStore) Update(ctx context.Context, doctor *models.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorStore) Delete(ctx context.Context, id uint) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockAppointmentStore struct {
	CreateFunc       func(ctx context.Context, appointment *models.Appointment) error
	GetAllFunc       func(ctx context.Context, filter string) ([]models.Appointment, error)
	GetByIDFunc      func(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status string) error
	DeleteFunc       func(ctx context.Context, id uint) error

	CreateCallCount int32
}

func (m *MockAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentStore) GetAll(ctx context.Context, filter string) ([]models.Appointment, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockAppointmentStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockContactStore struct {
	CreateFunc       func(ctx context.Context, contact *models.Contact) error
	GetAllFunc       func(ctx context.Context, filter string) ([]models.Contact, error)
	GetByIDFunc      func(ctx context.Context, id uint) (*models.Contact, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status string) error
	DeleteFunc       func(ctx context.Context, id uint) error

	UpdateStatusCallCount int32
}

func (m *MockContactStore) Create(ctx context.Context, contact *models.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return nil
}

func (m *MockContactStore) GetAll(ctx context.Context, filter string) ([]models.Contact, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockContactStore) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockContactStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockContactStore) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockTestimonialStore struct {
	CreateFunc    func(ctx context.Context, testimonial *models.Testimonial) error
	GetAllFunc    func(ctx context.Context, filter string) ([]models.Testimonial, error)
	GetByIDFunc   func(ctx context.Context, id uint) (*models.Testimonial, error)
	UpdateFunc    func(ctx context.Context, testimonial *models.Testimonial) error
	SetActiveFunc func(ctx context.Context, id uint, active bool) error
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *MockTestimonialStore) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, testimonial)
	}
	return nil
}

func (m *MockTestimonialStore) GetAll(ctx context.Context, filter string) ([]models.Testimonial, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockTestimonialStore) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockTestimonialStore) Update(ctx context.Context, testimonial *models.Testimonial) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, testimonial)
	}
	return nil
}

func (m *MockTestimonialStore) SetActive(ctx context.Context, id uint, active bool) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *MockTestimonialStore) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMediaStore records uploads and removals.
type MockMediaStore struct {
	UploadFunc func(ctx context.Context, prefix, originalFilename string, file io.Reader) (string, error)
	RemoveFunc func(ctx context.Context, prefix, photoURL string) error

	UploadCallCount int32
	RemoveCallCount int32
	RemovedURLs     []string
}

func (m *MockMediaStore) Upload(ctx context.Context, prefix, originalFilename string, file io.Reader) (string, error) {
	atomic.AddInt32(&m.UploadCallCount, 1)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, prefix, originalFilename, file)
	}
	return "https://cdn.example.com/" + prefix + "/mock.jpg", nil
}

func (m *MockMediaStore) Remove(ctx context.Context, prefix, photoURL string) error {
	atomic.AddInt32(&m.RemoveCallCount, 1)
	m.RemovedURLs = append(m.RemovedURLs, photoURL)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, prefix, photoURL)
	}
	return nil
}
