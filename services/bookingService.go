package services

import (
	"MediPlus/models"
	"MediPlus/utils"
	"context"
	"log"
	"os"
	"strings"
	"time"
)

// BookingService handles public appointment submissions: field validation,
// booking-window checks, fuzzy doctor resolution and persistence.
type BookingService struct {
	appointments AppointmentStore
	doctors      DoctorStore

	now       func() time.Time
	sendEmail func(*models.Appointment) error
}

func NewBookingService(appointments AppointmentStore, doctors DoctorStore) *BookingService {
	return &BookingService{
		appointments: appointments,
		doctors:      doctors,
		now:          time.Now,
		sendEmail:    utils.SendBookingConfirmationEmail,
	}
}

// Submit validates and persists a new appointment request. The stored status
// is always pending, regardless of anything the caller might try to pass.
func (s *BookingService) Submit(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	if err := utils.ValidateBooking(req, s.now()); err != nil {
		return nil, utils.ValidationError("Veuillez remplir tous les champs obligatoires", err)
	}

	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors du chargement des médecins", err)
	}

	appointment := &models.Appointment{
		PatientFirstName: strings.TrimSpace(req.FirstName),
		PatientLastName:  strings.TrimSpace(req.LastName),
		PatientEmail:     strings.TrimSpace(req.Email),
		PatientPhone:     strings.TrimSpace(req.Phone),
		Service:          req.Service,
		DoctorID:         ResolveDoctor(req.Doctor, doctors),
		AppointmentDate:  req.Date,
		AppointmentTime:  req.Time,
		Status:           models.AppointmentPending,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, utils.ClassifyStoreError("Erreur lors de l'enregistrement du rendez-vous", err)
	}

	// Confirmation email is best-effort: the appointment is already persisted.
	if os.Getenv("SMTP_HOST") != "" {
		if err := s.sendEmail(appointment); err != nil {
			log.Printf("Failed to send booking confirmation to %s: %v", appointment.PatientEmail, err)
		}
	}

	return appointment, nil
}

// ResolveDoctor maps a free-text doctor name to an id: exact match first, then
// the first doctor whose name is a substring of the supplied value. An
// unresolved name yields nil; unassigned is always a valid submission.
func ResolveDoctor(name string, doctors []models.Doctor) *uint {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "none") {
		return nil
	}

	for i := range doctors {
		if doctors[i].Name == name {
			return &doctors[i].ID
		}
	}
	for i := range doctors {
		if strings.Contains(name, doctors[i].Name) {
			return &doctors[i].ID
		}
	}
	return nil
}

// FilterEligibleDoctors returns the doctors whose specialty matches the
// service text. The general-medicine service intentionally matches everyone.
// An empty result is not an error; the caller communicates that a generalist
// will be assigned.
func FilterEligibleDoctors(service string, doctors []models.Doctor) []models.Doctor {
	serviceLower := strings.ToLower(service)
	general := strings.Contains(serviceLower, "générale") ||
		strings.Contains(serviceLower, "consultation générale")

	eligible := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if general || strings.Contains(strings.ToLower(doctor.Specialty), serviceLower) {
			eligible = append(eligible, doctor)
		}
	}
	return eligible
}
