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

type TestimonialHandler struct {
	service *services.TestimonialService
}

func NewTestimonialHandler(service *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// GetActiveTestimonials lists the published testimonials for the public site.
func (h *TestimonialHandler) GetActiveTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, testimonials, http.StatusOK)
}

// GetAllTestimonials lists testimonials for the back office, active and
// hidden alike.
func (h *TestimonialHandler) GetAllTestimonials(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	search := c.Query("q")

	testimonials, err := h.service.List(c.Request.Context(), filter, search)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, testimonials, http.StatusOK)
}

// CreateTestimonial adds a testimonial, with an optional multipart photo.
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var input models.TestimonialInput
	if err := c.ShouldBind(&input); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	photo, closePhoto, err := extractPhoto(c)
	if err != nil {
		middlewares.HttpError(c, "Invalid photo upload", http.StatusBadRequest, err)
		return
	}
	defer closePhoto()

	testimonial, err := h.service.Create(c.Request.Context(), input, photo)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, testimonial, http.StatusCreated)
}

// UpdateTestimonial edits a testimonial, replacing the photo when a new file
// is supplied.
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid testimonial ID", http.StatusBadRequest, err)
		return
	}

	var input models.TestimonialInput
	if err := c.ShouldBind(&input); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	photo, closePhoto, err := extractPhoto(c)
	if err != nil {
		middlewares.HttpError(c, "Invalid photo upload", http.StatusBadRequest, err)
		return
	}
	defer closePhoto()

	testimonial, err := h.service.Update(c.Request.Context(), uint(id), input, photo)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, testimonial, http.StatusOK)
}

// ToggleTestimonial flips a testimonial between published and hidden.
func (h *TestimonialHandler) ToggleTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid testimonial ID", http.StatusBadRequest, err)
		return
	}

	active, err := h.service.ToggleActive(c.Request.Context(), uint(id))
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"is_active": active}, http.StatusOK)
}

// DeleteTestimonial removes a testimonial permanently.
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid testimonial ID", http.StatusBadRequest, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	log.Printf("Testimonial %d deleted by %s", id, adminEmail(c))
	c.Status(http.StatusNoContent)
}
