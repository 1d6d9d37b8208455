package models

import (
	"time"
)

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Contact statuses
const (
	ContactUnread   = "unread"
	ContactRead     = "read"
	ContactReplied  = "replied"
	ContactArchived = "archived"
)

// Services offered by the clinic, as shown on the booking form.
var Services = []string{
	"Consultation Générale",
	"Cardiologie",
	"Neurologie",
	"Orthopédie",
	"Ophtalmologie",
	"Pédiatrie",
	"Urgence",
	"Dermatologie",
	"Gynécologie",
	"Psychiatrie",
}

// Specialties recognized for doctors. Advisory only, the store does not enforce it.
var Specialties = []string{
	"Cardiologie",
	"Neurologie",
	"Orthopédie",
	"Ophtalmologie",
	"Médecine Générale",
	"Pédiatrie",
	"Dermatologie",
	"Gynécologie",
	"Psychiatrie",
	"Radiologie",
	"Urgence",
}

// IsValidAppointmentStatus reports whether s is one of the four appointment statuses.
func IsValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// IsValidContactStatus reports whether s is one of the four contact statuses.
func IsValidContactStatus(s string) bool {
	switch s {
	case ContactUnread, ContactRead, ContactReplied, ContactArchived:
		return true
	}
	return false
}

// Doctor model
type Doctor struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string    `gorm:"column:name;not null;index" json:"name"`
	Specialty  string    `gorm:"column:specialty;not null" json:"specialty"`
	Experience string    `gorm:"column:experience" json:"experience"`
	Hours      string    `gorm:"column:hours" json:"hours"`
	Phone      string    `gorm:"column:phone" json:"phone"`
	Email      string    `gorm:"column:email;not null" json:"email"`
	Bio        string    `gorm:"column:bio;type:text" json:"bio"`
	PhotoURL   *string   `gorm:"column:photo_url" json:"photo_url"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Appointment model. DoctorID is a weak reference: deleting a doctor nulls it
// out, historical appointments are kept.
type Appointment struct {
	ID               uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientFirstName string    `gorm:"column:patient_first_name;not null" json:"patient_first_name"`
	PatientLastName  string    `gorm:"column:patient_last_name;not null;index" json:"patient_last_name"`
	PatientEmail     string    `gorm:"column:patient_email;not null" json:"patient_email"`
	PatientPhone     string    `gorm:"column:patient_phone;not null" json:"patient_phone"`
	Service          string    `gorm:"column:service;not null" json:"service"`
	DoctorID         *uint     `gorm:"column:doctor_id;index" json:"doctor_id"`
	AppointmentDate  string    `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	AppointmentTime  string    `gorm:"column:appointment_time;not null" json:"appointment_time"`
	Status           string    `gorm:"column:status;check:status IN ('pending', 'confirmed', 'cancelled', 'completed');not null" json:"status"`
	Notes            *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Doctor           *Doctor   `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DoctorName returns the assigned doctor's name, or "Non assigné" when the
// reference is null.
func (a *Appointment) DoctorName() string {
	if a.Doctor != nil && a.Doctor.Name != "" {
		return a.Doctor.Name
	}
	return "Non assigné"
}

// Contact model
type Contact struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Status    string    `gorm:"column:status;check:status IN ('unread', 'read', 'replied', 'archived');not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// Testimonial model. IsActive soft-hides the entry from the public site
// without deleting it.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Role      string    `gorm:"column:role;not null;default:'Patient'" json:"role"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Rating    int       `gorm:"column:rating;check:rating BETWEEN 1 AND 5;not null" json:"rating"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	PhotoURL  *string   `gorm:"column:photo_url" json:"photo_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
