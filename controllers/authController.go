package controllers

import (
	"MediPlus/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes the authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/login", ac.Handler.Login)
	router.GET("/auth/session", ac.Handler.Session)
	router.POST("/auth/refresh", ac.Handler.Refresh)
	router.POST("/auth/logout", ac.Handler.Logout)
}
