package controllers

import (
	"MediPlus/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the visitor-facing routes. The submission
// endpoints additionally go through the rate limiter.
func SetupPublicRoutes(
	router *gin.Engine,
	rateLimiter gin.HandlerFunc,
	bookingHandler *handlers.BookingHandler,
	contactHandler *handlers.ContactHandler,
	testimonialHandler *handlers.TestimonialHandler,
) {
	router.GET("/doctors", bookingHandler.ListDoctors)
	router.GET("/testimonials", testimonialHandler.GetActiveTestimonials)

	router.POST("/appointments", rateLimiter, bookingHandler.SubmitAppointment)
	router.POST("/contacts", rateLimiter, contactHandler.SubmitContact)
}
