package middlewares

import (
	"MediPlus/utils"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store user details in the context.
type contextKey string

const userEmailKey contextKey = "userEmail"

// AdminAuthMiddleware validates the session token and re-checks the identity
// against the administrative allowlist on every request. Token validity alone
// is not enough: a stale token for a since-revoked identity must not pass.
func AdminAuthMiddleware(adminDomain, adminAddress string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The access token normally travels in a cookie; the query parameter
		// fallback serves links such as the CSV export.
		token, err := c.Cookie("accessToken")
		if err != nil || token == "" {
			token = c.DefaultQuery("accessToken", "")
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if !utils.IsAdminEmail(claims.Email, adminDomain, adminAddress) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userEmailKey, claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractUserEmailFromContext retrieves the acting administrator's email, as
// stored by AdminAuthMiddleware. Handlers use it for audit log lines on
// destructive operations.
func ExtractUserEmailFromContext(ctx context.Context) (string, error) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok {
		return "", errors.New("user email not found in context")
	}
	return email, nil
}
