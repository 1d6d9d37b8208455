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

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// extractPhoto pulls the optional photo file out of a multipart form. The
// returned closer must be called once the upload has been consumed.
func extractPhoto(c *gin.Context) (*services.PhotoUpload, func(), error) {
	header, err := c.FormFile("photo")
	if err != nil {
		// No file part at all; the photo travels as photo_url or not at all.
		return nil, func() {}, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	photo := &services.PhotoUpload{
		Filename: header.Filename,
		Content:  file,
	}
	return photo, func() { _ = file.Close() }, nil
}

// adminEmail names the acting administrator for audit log lines. Outside the
// authenticated admin group there is no identity to report.
func adminEmail(c *gin.Context) string {
	email, err := middlewares.ExtractUserEmailFromContext(c.Request.Context())
	if err != nil {
		return "unknown"
	}
	return email
}

// GetAllDoctors lists the full roster for the back office.
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, doctors, http.StatusOK)
}

// CreateDoctor adds a doctor from a multipart form carrying the profile
// fields plus the photo file.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input models.DoctorInput
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

	doctor, err := h.service.Create(c.Request.Context(), input, photo)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusCreated)
}

// UpdateDoctor edits a doctor's profile, replacing the photo when a new file
// is supplied.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid doctor ID", http.StatusBadRequest, err)
		return
	}

	var input models.DoctorInput
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

	doctor, err := h.service.Update(c.Request.Context(), uint(id), input, photo)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusOK)
}

// DeleteDoctor removes a doctor. Appointments that referenced the doctor keep
// existing without an assignment.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "Invalid doctor ID", http.StatusBadRequest, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		middlewares.HttpAppError(c, err)
		return
	}
	log.Printf("Doctor %d deleted by %s", id, adminEmail(c))
	c.Status(http.StatusNoContent)
}
