package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// The back-office session rides on two HttpOnly cookies: a short-lived access
// token and a longer-lived refresh token that can mint a new access token
// without re-entering credentials.

// SetAuthCookies installs the full cookie pair after a successful login.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	setCookie(c, "accessToken", accessToken, AccessTokenExpiry)
	setCookie(c, "refreshToken", refreshToken, RefreshTokenExpiry)
}

// SetAccessCookie replaces only the access token, used by the refresh flow.
func SetAccessCookie(c *gin.Context, accessToken string) {
	setCookie(c, "accessToken", accessToken, AccessTokenExpiry)
}

func setCookie(c *gin.Context, name, value string, expiry time.Duration) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(name, value, int(expiry.Seconds()), "/", "", secure, true)
}

// ClearAuthCookies drops the session pair on logout.
func ClearAuthCookies(c *gin.Context) {
	clearCookie(c, "accessToken")
	clearCookie(c, "refreshToken")
}

func clearCookie(c *gin.Context, name string) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
