package utils

import (
	"MediPlus/models"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Booking window: dates between today and a rolling 6-month horizon, times on
// a 15-minute grid within opening hours.
const (
	BookingHorizonMonths = 6
	OpeningHour          = 8
	ClosingHour          = 19
	SlotMinutes          = 15
)

var (
	ErrDateOutOfRange = errors.New("la date doit être comprise entre aujourd'hui et les 6 prochains mois")
	ErrTimeOutOfRange = errors.New("l'heure doit être comprise entre 08h00 et 19h00")
	ErrTimeOffGrid    = errors.New("l'heure doit tomber sur une tranche de 15 minutes")
)

// ValidateBooking checks the public booking payload. The date and time bounds
// are enforced here, not just by the form widget, so out-of-range submissions
// from any caller are rejected before a store call is made.
func ValidateBooking(req models.BookingRequest, now time.Time) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required),
		validation.Field(&req.Service, validation.Required),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Time, validation.Required),
	)
	if err != nil {
		return err
	}

	if err := ValidateAppointmentDate(req.Date, now); err != nil {
		return err
	}
	return ValidateAppointmentTime(req.Time)
}

// ValidateAppointmentDate parses dateStr as YYYY-MM-DD and checks the rolling
// booking window against now.
func ValidateAppointmentDate(dateStr string, now time.Time) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("date invalide: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, BookingHorizonMonths, 0)
	if date.Before(today) || date.After(horizon) {
		return ErrDateOutOfRange
	}
	return nil
}

// ValidateAppointmentTime parses timeStr as HH:MM and checks opening hours and
// the 15-minute grid.
func ValidateAppointmentTime(timeStr string) error {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return fmt.Errorf("heure invalide: %w", err)
	}

	minutes := t.Hour()*60 + t.Minute()
	if minutes < OpeningHour*60 || minutes > ClosingHour*60 {
		return ErrTimeOutOfRange
	}
	if minutes%SlotMinutes != 0 {
		return ErrTimeOffGrid
	}
	return nil
}

// ValidateContact checks the public contact-form payload.
func ValidateContact(req models.ContactRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Message, validation.Required, validation.Length(10, 0)),
	)
}

// ValidateDoctorInput checks the admin doctor payload. The photo requirement
// is checked separately because it depends on whether a file was attached.
func ValidateDoctorInput(input models.DoctorInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.Specialty, validation.Required),
		validation.Field(&input.Email, validation.Required, is.Email),
	)
}

// ValidateTestimonialInput checks the admin testimonial payload. A rating
// outside 1..5 is rejected, never clamped.
func ValidateTestimonialInput(input models.TestimonialInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.Content, validation.Required),
		validation.Field(&input.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// ValidateCredentials checks the login payload.
func ValidateCredentials(creds models.Credentials) error {
	return validation.ValidateStruct(&creds,
		validation.Field(&creds.Email, validation.Required, is.Email),
		validation.Field(&creds.Password, validation.Required),
	)
}
