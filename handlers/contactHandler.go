package handlers

import (
	"MediPlus/middlewares"
	"MediPlus/models"
	"MediPlus/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact receives a public contact-form message.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	contact, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, contact, http.StatusCreated)
}

// GetAllContacts lists contact messages with counters over the filtered set.
func (h *ContactHandler) GetAllContacts(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	search := c.Query("q")

	contacts, stats, err := h.service.List(c.Request.Context(), filter, search)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"contacts": contacts,
		"stats":    stats,
	}, http.StatusOK)
}

// GetContactByID returns one message. Opening an unread message marks it read.
func (h *ContactHandler) GetContactByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid contact ID", http.StatusBadRequest, err)
		return
	}

	contact, err := h.service.ViewDetails(c.Request.Context(), uint(id))
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, contact, http.StatusOK)
}

// UpdateContactStatus moves a message through its handling states.
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid contact ID", http.StatusBadRequest, err)
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

// DeleteContact removes a message permanently.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid contact ID", http.StatusBadRequest, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	log.Printf("Contact %d deleted by %s", id, adminEmail(c))
	c.Status(http.StatusNoContent)
}
