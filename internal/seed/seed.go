package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/config"
	"github.com/yigit/practicum/internal/pkg/auth"
)

// AdminStore is the slice of the user repository the seeder needs
type AdminStore interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateAdmin(ctx context.Context, user *appModels.User) (int64, error)
}

// CreateDefaultAdmin creates the configured administrator unless an account with that
// username already exists. The password is stored as a bcrypt hash.
func CreateDefaultAdmin(ctx context.Context, users AdminStore, cfg *config.Config, lgr zerolog.Logger) error {
	if !cfg.Seed.Enabled {
		lgr.Debug().Msg("Seeding disabled, skipping default admin")
		return nil
	}

	username := cfg.Seed.AdminUsername
	exists, err := users.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		lgr.Info().Str("username", username).Msg("Default admin already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	id, err := users.CreateAdmin(ctx, &appModels.User{
		Username: username,
		Password: hash,
		FullName: cfg.Seed.AdminFullName,
		IsAdmin:  true,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Int64("userID", id).Str("username", username).Msg("Default admin created")
	return nil
}
