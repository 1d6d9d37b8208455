package handlers

import (
	"MediPlus/middlewares"
	"MediPlus/models"
	"MediPlus/services"
	"MediPlus/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates an administrator and installs the session cookies.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	middlewares.RespondJSON(c, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	}, http.StatusOK)
}

// Session reports the identity behind the current session token. The admin
// flag is recomputed from the allowlist on every call.
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie("accessToken")
	if err != nil || token == "" {
		middlewares.HttpError(c, "Missing access token", http.StatusUnauthorized, err)
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		middlewares.HttpError(c, "Invalid token", http.StatusUnauthorized, err)
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"user": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
		},
		"is_admin": h.service.IsAdmin(claims.Email),
	}, http.StatusOK)
}

// Refresh mints a new access token from a valid refresh token. The identity
// is re-checked against the allowlist before any token is issued.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie("refreshToken")
	if err != nil || token == "" {
		middlewares.HttpError(c, "Missing refresh token", http.StatusUnauthorized, err)
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		middlewares.HttpError(c, "Invalid refresh token", http.StatusUnauthorized, err)
		return
	}

	if !h.service.IsAdmin(claims.Email) {
		middlewares.HttpError(c, "Accès réservé aux administrateurs", http.StatusForbidden, nil)
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		middlewares.HttpAppError(c, err)
		return
	}

	utils.SetAccessCookie(c, accessToken)
	middlewares.RespondJSON(c, gin.H{"refreshed": true}, http.StatusOK)
}

// Logout clears the session cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(http.StatusOK)
}
