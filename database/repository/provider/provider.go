package providerRepo

import (
	"context"
	"errors"

	"wanderhub/models"
)

// ErrServiceAlreadyRegistered is returned by ClaimService when the provider
// already owns a service registration.
var ErrServiceAlreadyRegistered = errors.New("provider already has a registered service")

// ProviderRepository is the persistence contract for service-provider accounts.
type ProviderRepository interface {
	Create(ctx context.Context, p *models.ServiceProvider) error
	GetByID(ctx context.Context, id string) (*models.ServiceProvider, error)
	GetByEmail(ctx context.Context, email string) (*models.ServiceProvider, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.ServiceProvider, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	// ClaimService links the provider to its service registration as a single
	// conditional write that only succeeds while no service is linked yet.
	// Enforces the one-service-per-provider invariant under concurrency.
	ClaimService(ctx context.Context, providerID string, ref models.ServiceRef) error
}
