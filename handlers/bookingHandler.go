package handlers

import (
	"MediPlus/middlewares"
	"MediPlus/models"
	"MediPlus/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	booking *services.BookingService
	doctors *services.DoctorService
}

func NewBookingHandler(booking *services.BookingService, doctors *services.DoctorService) *BookingHandler {
	return &BookingHandler{booking: booking, doctors: doctors}
}

// SubmitAppointment receives a public booking request and records it as a
// pending appointment.
func (h *BookingHandler) SubmitAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	appointment, err := h.booking.Submit(c.Request.Context(), req)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, appointment, http.StatusCreated)
}

// ListDoctors returns the doctor roster. When a service is given, the roster
// is narrowed to the doctors eligible for it.
func (h *BookingHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}

	if service := c.Query("service"); service != "" {
		doctors = services.FilterEligibleDoctors(service, doctors)
	}
	middlewares.RespondJSON(c, doctors, http.StatusOK)
}
