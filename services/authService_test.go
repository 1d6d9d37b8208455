package services

import (
	"MediPlus/models"
	"MediPlus/repositories"
	"MediPlus/utils"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ repositories.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	GetUserByEmailFunc   func(ctx context.Context, email string) (*models.User, error)
	AuthenticateUserFunc func(ctx context.Context, email, password string) (*models.User, error)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, errors.New("GetUserByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	if m.AuthenticateUserFunc != nil {
		return m.AuthenticateUserFunc(ctx, email, password)
	}
	return nil, errors.New("AuthenticateUserFunc not implemented in mock")
}

func TestAuthLoginIssuesTokensForAllowlistedAdmin(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	users := &MockUserRepository{
		AuthenticateUserFunc: func(ctx context.Context, email, password string) (*models.User, error) {
			return &models.User{ID: 7, Email: "alice@mediplus.fr"}, nil
		},
	}
	svc := NewAuthService(users, "mediplus.fr", "")

	user, accessToken, refreshToken, err := svc.Login(context.Background(), models.Credentials{
		Email:    "alice@mediplus.fr",
		Password: "secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	users := &MockUserRepository{
		AuthenticateUserFunc: func(ctx context.Context, email, password string) (*models.User, error) {
			return nil, errors.New("invalid email or password")
		},
	}
	svc := NewAuthService(users, "mediplus.fr", "")

	_, _, _, err := svc.Login(context.Background(), models.Credentials{
		Email:    "alice@mediplus.fr",
		Password: "wrong",
	})
	assert.Error(t, err)
	assert.Equal(t, utils.KindAccessDenied, utils.KindOf(err))
}

func TestAuthLoginRejectsNonAdminIdentity(t *testing.T) {
	users := &MockUserRepository{
		AuthenticateUserFunc: func(ctx context.Context, email, password string) (*models.User, error) {
			return &models.User{ID: 9, Email: "bob@elsewhere.com"}, nil
		},
	}
	svc := NewAuthService(users, "mediplus.fr", "owner@gmail.com")

	_, _, _, err := svc.Login(context.Background(), models.Credentials{
		Email:    "bob@elsewhere.com",
		Password: "secret",
	})
	assert.Error(t, err)
	assert.Equal(t, utils.KindAccessDenied, utils.KindOf(err))
}

func TestAuthLoginRejectsMalformedCredentials(t *testing.T) {
	svc := NewAuthService(&MockUserRepository{}, "mediplus.fr", "")

	_, _, _, err := svc.Login(context.Background(), models.Credentials{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestAuthIsAdmin(t *testing.T) {
	svc := NewAuthService(&MockUserRepository{}, "mediplus.fr", "owner@gmail.com")

	assert.True(t, svc.IsAdmin("alice@mediplus.fr"))
	assert.True(t, svc.IsAdmin("owner@gmail.com"))
	assert.False(t, svc.IsAdmin("bob@elsewhere.com"))
}
