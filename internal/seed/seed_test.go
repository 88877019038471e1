package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appModels "github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/config"
	"github.com/yigit/practicum/internal/pkg/auth"
)

type memAdmins struct {
	users     map[string]*appModels.User
	existsErr error
}

func (m *memAdmins) UsernameExists(_ context.Context, username string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.users[username]
	return ok, nil
}

func (m *memAdmins) CreateAdmin(_ context.Context, user *appModels.User) (int64, error) {
	m.users[user.Username] = user
	return int64(len(m.users)), nil
}

func seedConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Seed.Enabled = enabled
	cfg.Seed.AdminUsername = "admin"
	cfg.Seed.AdminPassword = "admin123"
	cfg.Seed.AdminFullName = "System Administrator"
	return cfg
}

func TestCreateDefaultAdmin(t *testing.T) {
	store := &memAdmins{users: map[string]*appModels.User{}}

	require.NoError(t, CreateDefaultAdmin(context.Background(), store, seedConfig(true), zerolog.Nop()))

	admin := store.users["admin"]
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.NotEqual(t, "admin123", admin.Password)
	assert.True(t, auth.CheckPassword(admin.Password, "admin123"))

	// second run leaves the existing account alone
	admin.Password = "kept"
	require.NoError(t, CreateDefaultAdmin(context.Background(), store, seedConfig(true), zerolog.Nop()))
	assert.Equal(t, "kept", store.users["admin"].Password)
}

func TestCreateDefaultAdmin_DisabledAndErrors(t *testing.T) {
	store := &memAdmins{users: map[string]*appModels.User{}}
	require.NoError(t, CreateDefaultAdmin(context.Background(), store, seedConfig(false), zerolog.Nop()))
	assert.Empty(t, store.users)

	store.existsErr = errors.New("connection refused")
	assert.Error(t, CreateDefaultAdmin(context.Background(), store, seedConfig(true), zerolog.Nop()))
}
