package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/o1egl/paseto"
)

const (
	// Set expiration times for access and refresh tokens.
	AccessTokenExpiry  = 24 * time.Hour
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// TokenClaims struct represents the data in the token (UserID, Email, Expiry).
type TokenClaims struct {
	UserID int64     `json:"userId"`
	Email  string    `json:"email"`
	Expiry time.Time `json:"expiry"`
}

// GetSymmetricKey retrieves the symmetric key from the environment variable
// and checks its length (32 bytes). Startup validates the key once so a
// misconfiguration fails fast; at request time the error is propagated, never
// fatal.
func GetSymmetricKey() ([]byte, error) {
	key := os.Getenv("SYMMETRIC_KEY")
	if len(key) != 32 {
		return nil, fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(key))
	}
	return []byte(key), nil
}

// GenerateTokens generates both the access token and refresh token for the given user.
func GenerateTokens(userID int64, email string) (accessToken, refreshToken string, err error) {
	accessToken, err = generatePASEToken(userID, email, AccessTokenExpiry)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return "", "", err
	}

	refreshToken, err = generatePASEToken(userID, email, RefreshTokenExpiry)
	if err != nil {
		log.Printf("Error generating refresh token: %v", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken generates only the access token for a user.
func GenerateAccessToken(userID int64, email string) (string, error) {
	token, err := generatePASEToken(userID, email, AccessTokenExpiry)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return "", err
	}
	return token, nil
}

// generatePASEToken generates a PASETO token for the given user and expiry duration.
func generatePASEToken(userID int64, email string, expiry time.Duration) (string, error) {
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Expiry: time.Now().Add(expiry),
	}

	symmetricKey, err := GetSymmetricKey()
	if err != nil {
		return "", err
	}
	token, err := paseto.NewV2().Encrypt(symmetricKey, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken validates the given token string and checks for expiry.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	claims, err := parseToken(tokenString)
	if err != nil {
		log.Printf("Token parsing failed: %v", err)
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if time.Now().After(claims.Expiry) {
		return nil, errors.New("token expired")
	}

	return claims, nil
}

// parseToken decrypts the token and extracts claims from it.
func parseToken(tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	symmetricKey, err := GetSymmetricKey()
	if err != nil {
		return nil, err
	}

	err = paseto.NewV2().Decrypt(tokenString, symmetricKey, &claims, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	return &claims, nil
}

// IsAdminEmail reports whether email belongs to the administrative allowlist:
// either the organizational domain suffix or the dedicated admin address.
// A valid session with any other identity carries no administrative rights.
func IsAdminEmail(email, domain, adminAddress string) bool {
	if email == "" {
		return false
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if adminAddress != "" && email == strings.ToLower(adminAddress) {
		return true
	}
	if domain == "" {
		return false
	}
	if !strings.HasPrefix(domain, "@") {
		domain = "@" + domain
	}
	return strings.HasSuffix(email, strings.ToLower(domain))
}
