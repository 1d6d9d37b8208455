package handlers

import (
	"MediPlus/middlewares"
	"MediPlus/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// GetAllAppointments lists appointments for the back office, narrowed by the
// optional filter and free-text search, with the dashboard counters computed
// over the filtered set.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	search := c.Query("q")

	appointments, stats, err := h.service.List(c.Request.Context(), filter, search)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"appointments": appointments,
		"stats":        stats,
	}, http.StatusOK)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid appointment ID", http.StatusBadRequest, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), uint(id), body.Status); err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"status": body.Status}, http.StatusOK)
}

// DeleteAppointment removes an appointment record permanently.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid appointment ID", http.StatusBadRequest, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	log.Printf("Appointment %d deleted by %s", id, adminEmail(c))
	c.Status(http.StatusNoContent)
}

// ExportAppointments streams the filtered appointment list as a CSV download.
func (h *AppointmentHandler) ExportAppointments(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	search := c.Query("q")

	appointments, _, err := h.service.List(c.Request.Context(), filter, search)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}

	data, err := services.ExportAppointmentsCSV(appointments)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="rendez-vous.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
