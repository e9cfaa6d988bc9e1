package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yobeidat/obeidat-motors-backend/internal/repo"
	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/db/models"
	"github.com/yobeidat/obeidat-motors-backend/pkg/security"
)

// Repository exposes persistence for the users relation. The table exists for
// the future admin login flow; no HTTP route reads it yet.
type Repository struct {
	repo.Base
	passwordCfg config.PasswordConfig
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB, passwordCfg config.PasswordConfig) *Repository {
	return &Repository{Base: repo.NewBase(db), passwordCfg: passwordCfg}
}

// Create hashes the plaintext password and inserts the user row.
func (r *Repository) Create(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := security.HashPassword(password, r.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hash,
	}
	if err := r.DB(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID loads a user by their UUID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves the user matching the provided username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials checks a username/password pair against the stored hash.
func (r *Repository) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return security.VerifyPassword(password, user.Password)
}
