package models

// BookingRequest is the public appointment-submission payload. Doctor carries
// the display name chosen on the form and may be empty or unresolvable; the
// submission is valid either way.
type BookingRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// DoctorInput carries the admin-editable doctor fields. The photo file itself
// travels separately as multipart content.
type DoctorInput struct {
	Name       string `form:"name" json:"name"`
	Specialty  string `form:"specialty" json:"specialty"`
	Experience string `form:"experience" json:"experience"`
	Hours      string `form:"hours" json:"hours"`
	Phone      string `form:"phone" json:"phone"`
	Email      string `form:"email" json:"email"`
	Bio        string `form:"bio" json:"bio"`
	PhotoURL   string `form:"photo_url" json:"photo_url"`
}

// TestimonialInput carries the admin-editable testimonial fields.
type TestimonialInput struct {
	Name     string `form:"name" json:"name"`
	Role     string `form:"role" json:"role"`
	Content  string `form:"content" json:"content"`
	Rating   int    `form:"rating" json:"rating"`
	IsActive bool   `form:"is_active" json:"is_active"`
	PhotoURL string `form:"photo_url" json:"photo_url"`
}

// Credentials is the admin login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
