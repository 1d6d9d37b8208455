package services

import (
	"MediPlus/models"
	"MediPlus/repositories"
	"MediPlus/utils"
	"context"
)

// AuthService authenticates administrative accounts. A valid credential pair
// is not enough: the identity must also match the organizational allowlist,
// otherwise the session carries no administrative rights.
type AuthService struct {
	users        repositories.UserRepository
	adminDomain  string
	adminAddress string
}

func NewAuthService(users repositories.UserRepository, adminDomain, adminAddress string) *AuthService {
	return &AuthService{users: users, adminDomain: adminDomain, adminAddress: adminAddress}
}

// Login verifies the credentials and the allowlist, then issues the token pair.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, string, string, error) {
	if err := utils.ValidateCredentials(creds); err != nil {
		return nil, "", "", utils.ValidationError("Email ou mot de passe manquant", err)
	}

	user, err := s.users.AuthenticateUser(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, "", "", utils.AccessDeniedError("Email ou mot de passe incorrect")
	}

	if !utils.IsAdminEmail(user.Email, s.adminDomain, s.adminAddress) {
		return nil, "", "", utils.AccessDeniedError("Accès réservé aux administrateurs")
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, "", "", utils.InternalError("Erreur lors de la génération des jetons", err)
	}
	return user, accessToken, refreshToken, nil
}

// IsAdmin re-checks the allowlist for an already-authenticated identity.
func (s *AuthService) IsAdmin(email string) bool {
	return utils.IsAdminEmail(email, s.adminDomain, s.adminAddress)
}
