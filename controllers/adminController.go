package controllers

import (
	"MediPlus/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the back-office routes behind the admin-session
// middleware.
func SetupAdminRoutes(
	router *gin.Engine,
	adminAuth gin.HandlerFunc,
	doctorHandler *handlers.DoctorHandler,
	appointmentHandler *handlers.AppointmentHandler,
	contactHandler *handlers.ContactHandler,
	testimonialHandler *handlers.TestimonialHandler,
) {
	admin := router.Group("/admin").Use(adminAuth)
	{
		admin.GET("/doctors", doctorHandler.GetAllDoctors)
		admin.POST("/doctors", doctorHandler.CreateDoctor)
		admin.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
		admin.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)

		admin.GET("/appointments", appointmentHandler.GetAllAppointments)
		admin.GET("/appointments/export", appointmentHandler.ExportAppointments)
		admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateAppointmentStatus)
		admin.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

		admin.GET("/contacts", contactHandler.GetAllContacts)
		admin.GET("/contacts/:id", contactHandler.GetContactByID)
		admin.PATCH("/contacts/:id/status", contactHandler.UpdateContactStatus)
		admin.DELETE("/contacts/:id", contactHandler.DeleteContact)

		admin.GET("/testimonials", testimonialHandler.GetAllTestimonials)
		admin.POST("/testimonials", testimonialHandler.CreateTestimonial)
		admin.PUT("/testimonials/:id", testimonialHandler.UpdateTestimonial)
		admin.PATCH("/testimonials/:id/toggle", testimonialHandler.ToggleTestimonial)
		admin.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)
	}
}
