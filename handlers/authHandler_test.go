package handlers

import (
	"MediPlus/services"
	"MediPlus/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(services.NewAuthService(nil, "mediplus.fr", ""))

	router := gin.New()
	router.POST("/auth/refresh", handler.Refresh)
	return router
}

func refreshRequest(t *testing.T, email string) *http.Request {
	t.Helper()
	_, refreshToken, err := utils.GenerateTokens(7, email)
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	request.AddCookie(&http.Cookie{Name: "refreshToken", Value: refreshToken})
	return request
}

func TestRefreshIssuesNewAccessCookie(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := authTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, refreshRequest(t, "alice@mediplus.fr"))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var accessCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "accessToken" {
			accessCookie = cookie
		}
	}
	if assert.NotNil(t, accessCookie, "expected a fresh accessToken cookie") {
		claims, err := utils.ValidateToken(accessCookie.Value)
		assert.NoError(t, err)
		assert.Equal(t, "alice@mediplus.fr", claims.Email)
	}
}

func TestRefreshRejectsNonAdminIdentity(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := authTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, refreshRequest(t, "bob@elsewhere.com"))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies())
}

func TestRefreshRequiresCookie(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := authTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
