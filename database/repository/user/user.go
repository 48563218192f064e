package userRepo

import (
	"context"

	"wanderhub/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
