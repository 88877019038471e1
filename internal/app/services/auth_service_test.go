package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/auth"
)

type memUsers map[string]*models.User

func (m memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range m {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func newAuthFixture(t *testing.T) (*AuthService, *auth.JWTService) {
	t.Helper()
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	users := memUsers{"admin": {ID: 1, Username: "admin", Password: hash, FullName: "Admin", IsAdmin: true}}
	return NewAuthService(users, jwtSvc, zerolog.Nop()), jwtSvc
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtSvc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.True(t, resp.User.IsAdmin)

	claims, err := jwtSvc.ValidateToken(resp.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "  ", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	u, err := svc.CurrentUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = svc.CurrentUser(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
