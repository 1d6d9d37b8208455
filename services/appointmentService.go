package services

import (
	"MediPlus/models"
	"MediPlus/utils"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AppointmentStats is the derived projection recomputed on every fetch.
type AppointmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
	Today     int `json:"today"`
}

// AppointmentService provides the administrative lifecycle operations for
// appointments: filtered listing with stats, status transitions, deletion and
// CSV export.
type AppointmentService struct {
	store AppointmentStore
	now   func() time.Time
}

func NewAppointmentService(store AppointmentStore) *AppointmentService {
	return &AppointmentService{store: store, now: time.Now}
}

// List applies the store-level filter, then the client-side text search, and
// recomputes stats over the store-filtered set.
func (s *AppointmentService) List(ctx context.Context, filter, search string) ([]models.Appointment, AppointmentStats, error) {
	appointments, err := s.store.GetAll(ctx, filter)
	if err != nil {
		return nil, AppointmentStats{}, utils.ClassifyStoreError("Erreur lors du chargement des rendez-vous", err)
	}

	stats := ComputeAppointmentStats(appointments, s.now().Format("2006-01-02"))
	return SearchAppointments(appointments, search), stats, nil
}

// SetStatus moves the appointment to any status within the enum. There are no
// state-machine guard rails beyond the enum itself; the admin UI narrows the
// offered transitions.
func (s *AppointmentService) SetStatus(ctx context.Context, id uint, status string) error {
	if !models.IsValidAppointmentStatus(status) {
		return utils.ValidationError("Statut de rendez-vous invalide", nil)
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Rendez-vous introuvable")
		}
		return utils.ClassifyStoreError("Erreur lors de la mise à jour du statut", err)
	}
	return nil
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return utils.ClassifyStoreError("Erreur lors de la suppression du rendez-vous", err)
	}
	return nil
}

// SearchAppointments applies the case-insensitive free-text search across
// patient name, email, service, assigned doctor name and phone. An empty
// search matches everything.
func SearchAppointments(appointments []models.Appointment, search string) []models.Appointment {
	if search == "" {
		return appointments
	}

	searchLower := strings.ToLower(search)
	matched := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		doctorName := ""
		if a.Doctor != nil {
			doctorName = strings.ToLower(a.Doctor.Name)
		}
		if strings.Contains(strings.ToLower(a.PatientFirstName), searchLower) ||
			strings.Contains(strings.ToLower(a.PatientLastName), searchLower) ||
			strings.Contains(strings.ToLower(a.PatientEmail), searchLower) ||
			strings.Contains(strings.ToLower(a.Service), searchLower) ||
			strings.Contains(doctorName, searchLower) ||
			strings.Contains(a.PatientPhone, search) {
			matched = append(matched, a)
		}
	}
	return matched
}

// ComputeAppointmentStats recomputes the per-status counts and the
// scheduled-for-today count over the given list.
func ComputeAppointmentStats(appointments []models.Appointment, today string) AppointmentStats {
	stats := AppointmentStats{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case models.AppointmentPending:
			stats.Pending++
		case models.AppointmentConfirmed:
			stats.Confirmed++
		case models.AppointmentCancelled:
			stats.Cancelled++
		case models.AppointmentCompleted:
			stats.Completed++
		}
		if a.AppointmentDate == today {
			stats.Today++
		}
	}
	return stats
}

// ExportAppointmentsCSV renders the filtered view as CSV with a fixed column
// set. An empty result set is a reported error, never an empty file.
func ExportAppointmentsCSV(appointments []models.Appointment) ([]byte, error) {
	if len(appointments) == 0 {
		return nil, utils.ValidationError("Aucune donnée à exporter", nil)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Patient", "Email", "Téléphone", "Service", "Médecin", "Date", "Heure", "Statut", "Créé le"}
	if err := w.Write(header); err != nil {
		return nil, utils.InternalError("Erreur lors de l'export", err)
	}

	for _, a := range appointments {
		record := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.PatientFirstName + " " + a.PatientLastName,
			a.PatientEmail,
			a.PatientPhone,
			a.Service,
			a.DoctorName(),
			a.AppointmentDate,
			a.AppointmentTime,
			a.Status,
			a.CreatedAt.Format("02/01/2006"),
		}
		if err := w.Write(record); err != nil {
			return nil, utils.InternalError("Erreur lors de l'export", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, utils.InternalError("Erreur lors de l'export", err)
	}
	return buf.Bytes(), nil
}
